/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errUnknownChart       = errors.New("unknown chart")
	errHistoryUnavailable = errors.New("assessment history requires a database")
)
