/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/glucolens/glucolens/db"
	"github.com/glucolens/glucolens/risk"
)

// HistoryEntry is one row on the history page.
type HistoryEntry struct {
	ID          uuid.UUID
	Title       string
	Probability float64
	Level       risk.Level
	AnalysisURL string
	CreatedAt   time.Time
}

// RequireHistory answers 404 when no database is configured.
func RequireHistory(c flamego.Context, t template.Template, data template.Data) {
	if !db.Enabled() {
		webLogger.Debug("History requested without database", "error", errHistoryUnavailable, "path", c.Request().URL.Path)
		renderNotFound(t, data)

		return
	}

	c.Next()
}

// SaveAssessment stores the posted assessment and returns to its dashboard.
func SaveAssessment(c flamego.Context, s session.Session) {
	if err := c.Request().ParseForm(); err != nil {
		SetErrorFlash(s, "Could not read the submitted assessment")
		c.Redirect("/history", http.StatusSeeOther)

		return
	}

	form := c.Request().PostForm
	a := ParseAssessment(form)

	if _, err := db.CreateAssessment(c.Request().Context(), form.Get("label"), a); err != nil {
		webLogger.Error("Failed to save assessment", "error", err)
		SetErrorFlash(s, "Failed to save assessment")
		c.Redirect(AnalysisURL(a), http.StatusSeeOther)

		return
	}

	SetSuccessFlash(s, "Assessment saved")
	c.Redirect(AnalysisURL(a), http.StatusSeeOther)
}

// History lists saved assessments, newest first.
func History(c flamego.Context, t template.Template, data template.Data) {
	saved, err := db.ListAssessments(c.Request().Context(), db.DefaultHistoryLimit)
	if err != nil {
		webLogger.Error("Failed to list assessments", "error", err)
		data["Error"] = "Failed to load saved assessments"
	}

	entries := make([]HistoryEntry, 0, len(saved))
	for _, s := range saved {
		entries = append(entries, HistoryEntry{
			ID:          s.ID,
			Title:       s.Title(),
			Probability: s.Assessment.Probability,
			Level:       risk.Classify(s.Assessment.Probability),
			AnalysisURL: AnalysisURL(s.Assessment),
			CreatedAt:   s.CreatedAt,
		})
	}

	setPublicSiteTitle(data)
	data["Entries"] = entries

	t.HTML(http.StatusOK, "history")
}

// ViewHistory opens the dashboard for a saved assessment.
func ViewHistory(c flamego.Context, t template.Template, data template.Data) {
	saved, err := db.GetAssessment(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrAssessmentNotFound) || errors.Is(err, db.ErrInvalidAssessmentID) {
			renderNotFound(t, data)
			return
		}

		webLogger.Error("Failed to load assessment", "id", c.Param("id"), "error", err)
		renderServerError(t, data)

		return
	}

	c.Redirect(AnalysisURL(saved.Assessment), http.StatusSeeOther)
}

// DeleteHistory removes a saved assessment.
func DeleteHistory(c flamego.Context, s session.Session) {
	err := db.DeleteAssessment(c.Request().Context(), c.Param("id"))

	switch {
	case err == nil:
		SetSuccessFlash(s, "Assessment deleted")
	case errors.Is(err, db.ErrAssessmentNotFound), errors.Is(err, db.ErrInvalidAssessmentID):
		SetWarningFlash(s, "Assessment not found")
	default:
		webLogger.Error("Failed to delete assessment", "id", c.Param("id"), "error", err)
		SetErrorFlash(s, "Failed to delete assessment")
	}

	c.Redirect("/history", http.StatusSeeOther)
}
