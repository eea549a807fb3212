// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidContextRecord indicates a ContextRecord failed validation.
	ErrInvalidContextRecord = errors.New("invalid context record")

	// ErrInvalidEmotionProfile indicates an EmotionProfile failed validation.
	ErrInvalidEmotionProfile = errors.New("invalid emotion profile")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyID indicates the Id field is empty.
	ErrEmptyID = errors.New("record id cannot be empty")

	// ErrInvalidRecordType indicates an invalid RecordType value.
	ErrInvalidRecordType = errors.New("invalid record type")

	// ErrInvalidOverallScore indicates an overall score outside the 1-5 scale.
	ErrInvalidOverallScore = errors.New("overall score must be 0 (unanalyzed) or between 1 and 5")

	// ErrTooManyDominantEmotions indicates more than 3 dominant emotion labels.
	ErrTooManyDominantEmotions = errors.New("at most 3 dominant emotions allowed")
)
