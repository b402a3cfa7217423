package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"coinmarket-service/internal/application"
	"coinmarket-service/internal/content"
	"coinmarket-service/internal/domain"
)

// ErrNoRateMessage is the user-facing text for a conversion attempted before
// any price has been fetched.
const ErrNoRateMessage = "There is no current rate. Update Prices."

type Server struct {
	markets   *application.MarketService
	converter *application.Converter
	rates     application.RateStore
	catalog   *content.Catalog
	favorites map[string]application.FavoriteStore
	ping      func(ctx context.Context) error
}

// Deps carries everything the handlers need. Favorites is keyed by the URL
// domain segment: coins, education, glossary, featured.
type Deps struct {
	Markets   *application.MarketService
	Converter *application.Converter
	Rates     application.RateStore
	Catalog   *content.Catalog
	Favorites map[string]application.FavoriteStore
	Ping      func(ctx context.Context) error
}

func NewServer(d Deps) *Server {
	return &Server{
		markets:   d.Markets,
		converter: d.Converter,
		rates:     d.Rates,
		catalog:   d.Catalog,
		favorites: d.Favorites,
		ping:      d.Ping,
	}
}

func (s *Server) listMarkets(w http.ResponseWriter, r *http.Request) {
	coins := s.markets.Markets(r.URL.Query().Get("query"))
	writeJSON(w, http.StatusOK, coins)
}

func (s *Server) refreshMarkets(w http.ResponseWriter, r *http.Request) {
	coins, err := s.markets.Refresh(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, coins)
}

func (s *Server) getRate(w http.ResponseWriter, r *http.Request, crypto, fiat string) {
	price, ok := s.rates.Price(crypto, fiat)
	if !ok {
		writeError(w, http.StatusNotFound, "no cached rate for pair")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pair":  domain.PairKey(crypto, fiat),
		"price": price,
	})
}

type convertRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	var body convertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	fiat, ok := domain.ParseFiat(body.To)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported fiat: "+body.To)
		return
	}

	out, err := s.converter.Convert(r.Context(), body.Amount, body.From, fiat)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, out)
	case errors.Is(err, domain.ErrInvalidAmount):
		// Not an error state: the amount field is empty or mid-edit.
		writeJSON(w, http.StatusOK, application.ConversionOutcome{Display: ""})
	case errors.Is(err, domain.ErrNoRate):
		writeError(w, http.StatusConflict, ErrNoRateMessage)
	case errors.Is(err, domain.ErrUnsupportedFiat):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		internalError(w)
	}
}

func (s *Server) listConversions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.converter.History())
}

func (s *Server) listGlossary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Glossary)
}

func (s *Server) listEducation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Education)
}

func (s *Server) listFeatured(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Featured)
}

func (s *Server) listFavorites(w http.ResponseWriter, _ *http.Request, dom string) {
	favs, ok := s.favorites[dom]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown favorites domain")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ids": favs.IDs()})
}

func (s *Server) toggleFavorite(w http.ResponseWriter, r *http.Request, dom, id string) {
	favs, ok := s.favorites[dom]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown favorites domain")
		return
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	fav, err := favs.Toggle(r.Context(), id)
	if err != nil {
		internalError(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "favorite": fav})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
