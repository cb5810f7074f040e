// Command libkeyline builds the C-callable keyline library:
//
//	go build -buildmode=c-shared -o libkeyline.so ./cmd/libkeyline
//
// Every object is an opaque 64-bit handle; 0 is null. Allocating calls have
// a matching free call. Failures come back as false or 0, with details
// written to stderr.
package main

/*
#include <stdbool.h>
#include <stdint.h>

typedef enum {
	KEYLINE_INTERP_NONE = 0,
	KEYLINE_INTERP_LINEAR = 1,
	KEYLINE_INTERP_EASE_IN = 2,
	KEYLINE_INTERP_EASE_OUT = 3,
	KEYLINE_INTERP_EASE_IN_OUT = 4,
} keyline_interp;
*/
import "C"

import (
	"log"
	"os"

	"github.com/matt-g-everett/keyline/handle"
	"github.com/matt-g-everett/keyline/timeline"
)

var registry = handle.NewRegistry(log.New(os.Stderr, "keyline: ", log.LstdFlags))

func goString(s *C.char) (string, bool) {
	if s == nil {
		return "", false
	}
	return C.GoString(s), true
}

//export keyline_tl_new
func keyline_tl_new() C.uint64_t {
	return C.uint64_t(registry.NewTimeline())
}

//export keyline_tl_free
func keyline_tl_free(tl C.uint64_t) {
	registry.FreeTimeline(handle.Timeline(tl))
}

//export keyline_tl_track_get
func keyline_tl_track_get(tl C.uint64_t, name *C.char) C.uint64_t {
	n, ok := goString(name)
	if !ok {
		return 0
	}
	return C.uint64_t(registry.TimelineTrack(handle.Timeline(tl), n))
}

//export keyline_tl_track_del
func keyline_tl_track_del(tl C.uint64_t, name *C.char) C.bool {
	n, ok := goString(name)
	if !ok {
		return false
	}
	return C.bool(registry.TimelineDeleteTrack(handle.Timeline(tl), n))
}

//export keyline_tl_track_count
func keyline_tl_track_count(tl C.uint64_t) C.int {
	return C.int(registry.TimelineTrackCount(handle.Timeline(tl)))
}

//export keyline_tl_save
func keyline_tl_save(tl C.uint64_t, path *C.char) C.bool {
	p, ok := goString(path)
	if !ok {
		return false
	}
	return C.bool(registry.SaveFile(handle.Timeline(tl), p))
}

//export keyline_tl_load
func keyline_tl_load(path *C.char) C.uint64_t {
	p, ok := goString(path)
	if !ok {
		return 0
	}
	return C.uint64_t(registry.LoadFile(p))
}

//export keyline_tr_add_node
func keyline_tr_add_node(tr C.uint64_t, time C.uint32_t, value C.double, interp C.keyline_interp) C.bool {
	return C.bool(registry.TrackAddNode(handle.Track(tr), uint32(time), float64(value), timeline.Interp(interp)))
}

//export keyline_tr_del_node
func keyline_tr_del_node(tr C.uint64_t, time C.uint32_t) C.bool {
	return C.bool(registry.TrackDeleteNode(handle.Track(tr), uint32(time)))
}

//export keyline_tr_get_node
func keyline_tr_get_node(tr C.uint64_t, time C.uint32_t) C.uint64_t {
	return C.uint64_t(registry.TrackGetNode(handle.Track(tr), uint32(time)))
}

//export keyline_tr_update_node
func keyline_tr_update_node(tr C.uint64_t, time C.uint32_t, node C.uint64_t) C.bool {
	return C.bool(registry.TrackUpdateNode(handle.Track(tr), uint32(time), handle.Node(node)))
}

//export keyline_tr_value_at
func keyline_tr_value_at(tr C.uint64_t, time C.uint32_t) C.double {
	return C.double(registry.TrackValueAt(handle.Track(tr), uint32(time)))
}

//export keyline_tr_node_count
func keyline_tr_node_count(tr C.uint64_t) C.int {
	return C.int(registry.TrackNodeCount(handle.Track(tr)))
}

//export keyline_tr_iter_begin
func keyline_tr_iter_begin(tr C.uint64_t) C.uint64_t {
	return C.uint64_t(registry.IterBegin(handle.Track(tr)))
}

//export keyline_tr_iter_end
func keyline_tr_iter_end(tr C.uint64_t) C.uint64_t {
	return C.uint64_t(registry.IterEnd(handle.Track(tr)))
}

//export keyline_tr_iter_next
func keyline_tr_iter_next(it C.uint64_t) C.bool {
	return C.bool(registry.IterNext(handle.Iter(it)))
}

//export keyline_tr_iter_are_eq
func keyline_tr_iter_are_eq(a, b C.uint64_t) C.bool {
	return C.bool(registry.IterEqual(handle.Iter(a), handle.Iter(b)))
}

//export keyline_tr_iter_get
func keyline_tr_iter_get(it C.uint64_t) C.uint64_t {
	return C.uint64_t(registry.IterGet(handle.Iter(it)))
}

//export keyline_tr_iter_free
func keyline_tr_iter_free(it C.uint64_t) {
	registry.FreeIter(handle.Iter(it))
}

//export keyline_node_new
func keyline_node_new(time C.uint32_t, value C.double, interp C.keyline_interp) C.uint64_t {
	return C.uint64_t(registry.NewNode(uint32(time), float64(value), timeline.Interp(interp)))
}

//export keyline_node_clone
func keyline_node_clone(node C.uint64_t) C.uint64_t {
	return C.uint64_t(registry.CloneNode(handle.Node(node)))
}

//export keyline_node_free
func keyline_node_free(node C.uint64_t) {
	registry.FreeNode(handle.Node(node))
}

//export keyline_node_get_time
func keyline_node_get_time(node C.uint64_t) C.uint32_t {
	return C.uint32_t(registry.NodeTime(handle.Node(node)))
}

//export keyline_node_set_time
func keyline_node_set_time(node C.uint64_t, time C.uint32_t) {
	registry.SetNodeTime(handle.Node(node), uint32(time))
}

//export keyline_node_get_value
func keyline_node_get_value(node C.uint64_t) C.double {
	return C.double(registry.NodeValue(handle.Node(node)))
}

//export keyline_node_set_value
func keyline_node_set_value(node C.uint64_t, value C.double) {
	registry.SetNodeValue(handle.Node(node), float64(value))
}

//export keyline_node_get_interp
func keyline_node_get_interp(node C.uint64_t) C.keyline_interp {
	return C.keyline_interp(registry.NodeInterp(handle.Node(node)))
}

//export keyline_node_set_interp
func keyline_node_set_interp(node C.uint64_t, interp C.keyline_interp) {
	registry.SetNodeInterp(handle.Node(node), timeline.Interp(interp))
}

func main() {}
