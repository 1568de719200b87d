/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/glucolens/glucolens/charts"
	"github.com/glucolens/glucolens/risk"
)

// Patient renders the patient details form.
func Patient(t template.Template, data template.Data) {
	setPublicSiteTitle(data)
	t.HTML(http.StatusOK, "patient")
}

// Choice lets the user pick between the quick and full prediction.
func Choice(c flamego.Context, t template.Template, data template.Data) {
	setPublicSiteTitle(data)

	data["Name"] = strings.TrimSpace(c.Query("name"))
	data["Age"] = strings.TrimSpace(c.Query("age"))
	data["Gender"] = strings.TrimSpace(c.Query("gender"))

	t.HTML(http.StatusOK, "choice")
}

// Quick renders the three-field prediction form.
func Quick(c flamego.Context, t template.Template, data template.Data) {
	setPublicSiteTitle(data)

	data["Age"] = strings.TrimSpace(c.Query("age"))

	t.HTML(http.StatusOK, "quick")
}

// Full renders the extended prediction form.
func Full(c flamego.Context, t template.Template, data template.Data) {
	setPublicSiteTitle(data)

	data["Age"] = strings.TrimSpace(c.Query("age"))

	t.HTML(http.StatusOK, "full")
}

// Predict scores the submitted form and shows the result.
func Predict(c flamego.Context, predictor risk.Predictor, t template.Template, data template.Data) {
	in := ParseInput(c.Request().URL.Query())

	prediction, err := risk.Predict(c.Request().Context(), predictor, in)
	if err != nil {
		webLogger.Error("Prediction failed", "error", err, "full", in.IsFull())
		renderServerError(t, data)

		return
	}

	webLogger.Debug("Prediction", "full", in.IsFull(), "probability", prediction.Probability, "outcome", prediction.Outcome)

	a := prediction.Assessment()

	setPublicSiteTitle(data)
	data["Probability"] = prediction.Probability
	data["Category"] = prediction.Category
	data["Outcome"] = prediction.Outcome
	data["Full"] = in.IsFull()
	data["Assessment"] = a
	data["AnalysisURL"] = AnalysisURL(a)

	t.HTML(http.StatusOK, "result")
}

// Result shows a result passed entirely in the query string.
func Result(c flamego.Context, t template.Template, data template.Data) {
	query := c.Request().URL.Query()
	probability := queryFloat(query, paramProbability, risk.DefaultProbability)

	category := risk.Categorize(probability)
	if v := strings.TrimSpace(query.Get("risk")); v != "" {
		category.Risk = v
	}

	if v := strings.TrimSpace(query.Get("risk_level")); v != "" {
		category.Level = v
	}

	if v := strings.TrimSpace(query.Get("result_text")); v != "" {
		category.ResultText = v
	}

	a := risk.DefaultAssessment()
	a.Probability = probability

	setPublicSiteTitle(data)
	data["Probability"] = probability
	data["Category"] = category
	data["AnalysisURL"] = AnalysisURL(a)

	t.HTML(http.StatusOK, "result")
}

// TemplateFuncs are the helpers available to every page.
func TemplateFuncs() htmltemplate.FuncMap {
	return htmltemplate.FuncMap{
		"formatNumber": charts.FormatNumber,
	}
}
