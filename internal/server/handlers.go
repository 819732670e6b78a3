package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/namesmith/pkg/corpus"
	"github.com/dmitrymomot/namesmith/pkg/logger"
	"github.com/dmitrymomot/namesmith/pkg/shortlist"
	"github.com/dmitrymomot/namesmith/pkg/wordgen"
)

// signals mirrors the client-side datastar state.
type signals struct {
	Seed string `json:"seed"`
	Word string `json:"word"`
}

func (s *Server) readSignals(r *http.Request) (signals, error) {
	var sig signals
	if err := datastar.ReadSignals(r, &sig); err != nil {
		return sig, errors.Join(ErrInvalidRequest, err)
	}
	return sig, nil
}

// generator returns the server generator, limited by the max query parameter
// when one is given.
func (s *Server) generator(r *http.Request) (*wordgen.Generator, error) {
	raw := r.URL.Query().Get("max")
	if raw == "" {
		return s.gen, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > s.cfg.MaxLengthLimit {
		return nil, fmt.Errorf("%w: max must be an integer between 1 and %d", ErrInvalidRequest, s.cfg.MaxLengthLimit)
	}
	return s.gen.Limited(n)
}

func (s *Server) generate(r *http.Request, g *wordgen.Generator, seed string) resultView {
	return present(g.Generate(r.Context(), corpus.CleanSeed(seed)))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	g, err := s.generator(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := s.generate(r, g, r.URL.Query().Get("seed"))
	s.written(r, writeHTML(w, r, http.StatusOK, pageView(res, s.saved.List())))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	g, err := s.generator(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if isDatastar(r) {
		sig, err := s.readSignals(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res := s.generate(r, g, sig.Seed)
		s.written(r, writePatches(w, r, signals{Seed: res.Seed, Word: res.Word}, patch{component: resultPanel(res)}))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidRequest.Error(), http.StatusBadRequest)
		return
	}
	res := s.generate(r, g, r.PostForm.Get("seed"))
	s.written(r, writeHTML(w, r, http.StatusOK, pageView(res, s.saved.List())))
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var word string
	if isDatastar(r) {
		sig, err := s.readSignals(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		word = sig.Word
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, ErrInvalidRequest.Error(), http.StatusBadRequest)
			return
		}
		word = r.PostForm.Get("word")
	}

	item, err := s.saved.Add(corpus.CleanSeed(word))
	if err != nil {
		if errors.Is(err, shortlist.ErrEmptyWord) {
			err = errors.Join(ErrInvalidRequest, err)
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.log.InfoContext(r.Context(), "word saved", logger.Word(item.Word))

	if isDatastar(r) {
		s.written(r, writePatches(w, r, nil, patch{component: savedPanel(s.saved.List())}))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, ErrInvalidRequest.Error(), http.StatusBadRequest)
		return
	}
	if !s.saved.Remove(id) {
		http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	if isDatastar(r) {
		s.written(r, writePatches(w, r, nil, patch{component: savedPanel(s.saved.List())}))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIGenerate(w http.ResponseWriter, r *http.Request) {
	g, err := s.generator(r)
	if err != nil {
		s.written(r, writeJSONError(w, err))
		return
	}
	s.written(r, writeJSON(w, http.StatusOK, s.generate(r, g, r.URL.Query().Get("seed"))))
}

func (s *Server) handleAPISaved(w http.ResponseWriter, r *http.Request) {
	s.written(r, writeJSON(w, http.StatusOK, s.saved.List()))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

// written logs a failed write. Headers are already sent at this point, so
// nothing else can be done for the client.
func (s *Server) written(r *http.Request, err error) {
	if err != nil {
		s.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
