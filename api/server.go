package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/matt-g-everett/keyline/timeline"
)

// Api serves the static client and a read-only view of the live timeline.
type Api struct {
	shared *timeline.Shared
	addr   string
	mux    *http.ServeMux
}

// ValueResponse is the body of GET /value.
type ValueResponse struct {
	Track string  `json:"track"`
	Time  uint32  `json:"time"`
	Value float64 `json:"value"`
}

func NewApi(shared *timeline.Shared, addr string) *Api {
	a := new(Api)
	a.shared = shared
	a.addr = addr
	a.mux = http.NewServeMux()
	a.mux.HandleFunc("GET /timeline", a.handleTimeline)
	a.mux.HandleFunc("GET /tracks", a.handleTracks)
	a.mux.HandleFunc("GET /value", a.handleValue)
	a.mux.Handle("/", http.FileServer(http.Dir("client/dist")))
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Writing response: %v", err)
	}
}

func (a *Api) handleTimeline(w http.ResponseWriter, r *http.Request) {
	var data []byte
	var err error
	a.shared.View(func(tl *timeline.Timeline) {
		data, err = timeline.Marshal(tl, timeline.FormatJSON)
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (a *Api) handleTracks(w http.ResponseWriter, r *http.Request) {
	var names []string
	a.shared.View(func(tl *timeline.Timeline) {
		names = tl.Names()
	})
	writeJSON(w, names)
}

func (a *Api) handleValue(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("track")
	t, err := strconv.ParseUint(r.URL.Query().Get("t"), 10, 32)
	if err != nil {
		http.Error(w, "t must be a non-negative 32-bit integer", http.StatusBadRequest)
		return
	}

	resp := ValueResponse{Track: name, Time: uint32(t)}
	found := false
	a.shared.View(func(tl *timeline.Timeline) {
		var tr *timeline.Track
		if tr, found = tl.Lookup(name); found {
			resp.Value = tr.ValueAt(resp.Time)
		}
	})
	if !found {
		http.Error(w, "track not found", http.StatusNotFound)
		return
	}
	writeJSON(w, resp)
}

// Serve listens until ctx is done.
func (a *Api) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: a.addr, Handler: a.mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", a.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
