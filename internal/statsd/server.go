// Package statsd implements the development stats server: the HTTP
// collaborator that answers the catalog's remote queries. The protocol is
// the one the bot's stats client speaks — GET / with the query id in the
// "question" parameter, a plain-text sentence on success.
package statsd

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jorisvermeer/cinebot/internal/statsdb"
)

// Server answers statistics queries from the movie database.
type Server struct {
	db  *sql.DB
	log io.Writer
}

// NewServer creates a Server over an opened, migrated database.
// log receives one line per handled request; pass io.Discard to silence.
func NewServer(db *sql.DB, log io.Writer) *Server {
	return &Server{db: db, log: log}
}

// Handler returns the HTTP handler: "/" answers queries, "/healthz"
// reports liveness.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleQuery)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("question")
	if id == "" {
		s.logf(r, http.StatusBadRequest, "")
		http.Error(w, "ontbrekende parameter: question", http.StatusBadRequest)
		return
	}

	text, err := statsdb.Answer(r.Context(), s.db, id)
	if err != nil {
		if errors.Is(err, statsdb.ErrUnknownQuery) {
			s.logf(r, http.StatusNotFound, id)
			http.Error(w, "onbekende vraag", http.StatusNotFound)
			return
		}
		s.logf(r, http.StatusInternalServerError, id)
		http.Error(w, "interne fout", http.StatusInternalServerError)
		return
	}

	s.logf(r, http.StatusOK, id)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, text)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) logf(r *http.Request, status int, id string) {
	if s.log == nil {
		return
	}
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(s.log, "[%s] %s %s question=%q status=%d\n", ts, r.Method, r.URL.Path, id, status)
}
