package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

var (
	errEmptyBody    = errors.New("request body is required")
	errBodyTooLarge = fmt.Errorf("request body exceeds %d bytes", MaxPlayerBodyBytes)
)

// decodePlayer reads and validates a Player from the request body and
// returns the status code to use on failure.
func decodePlayer(w nethttp.ResponseWriter, r *nethttp.Request) (players.Player, int, error) {
	body := nethttp.MaxBytesReader(w, r.Body, MaxPlayerBodyBytes)
	defer body.Close()

	var p players.Player
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		var maxErr *nethttp.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return players.Player{}, nethttp.StatusRequestEntityTooLarge, errBodyTooLarge
		case errors.Is(err, io.EOF):
			return players.Player{}, nethttp.StatusBadRequest, errEmptyBody
		default:
			return players.Player{}, nethttp.StatusBadRequest, fmt.Errorf("invalid player json: %w", err)
		}
	}
	if err := p.Validate(); err != nil {
		return players.Player{}, nethttp.StatusBadRequest, err
	}
	return p, nethttp.StatusOK, nil
}
