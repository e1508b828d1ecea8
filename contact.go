package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tkremer/portfolio/contact"
)

// handleContact accepts a JSON submission from the contact form, validates
// it, and hands it to the configured recorders.
func (a *App) handleContact(c echo.Context) error {
	sub, err := decodeSubmission(c.Request().Body)
	if err != nil {
		a.Log.Error("contact form: decode body", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if err := sub.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	msg := contact.NewMessage(sub, c.RealIP())
	if err := a.Recorder.Record(c.Request().Context(), msg); err != nil {
		a.Log.Error("contact form: record", zap.String("id", msg.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message received successfully"})
}

// decodeSubmission parses exactly one JSON object from r. Trailing data and
// a bare null are errors.
func decodeSubmission(r io.Reader) (contact.Submission, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return contact.Submission{}, fmt.Errorf("read body: %w", err)
	}
	var sub *contact.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return contact.Submission{}, err
	}
	if sub == nil {
		return contact.Submission{}, errors.New("empty submission")
	}
	return *sub, nil
}
