/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	ErrDatabaseURLEnvVarNotSet          = errors.New("DATABASE_URL environment variable is not set")
	ErrDatabaseNameNotSpecified         = errors.New("database name not specified in URL")
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
	ErrAssessmentNotFound               = errors.New("assessment not found")
	ErrInvalidAssessmentID              = errors.New("invalid assessment id")
)
