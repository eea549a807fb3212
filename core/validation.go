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

import (
	"fmt"
	"time"
)

// ValidateContextRecord validates a ContextRecord according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Content must not be empty
//   - Type must be valid (diary, answer, or reflection)
//   - Date must not be in the future
//   - Emotions must pass EmotionProfile validation
//
// NOT validated (populated by processors):
//   - Embedding (nil until the embedding processor runs; computed on demand by the ranker)
//   - Keywords (can be empty until the emotion analyzer runs)
func ValidateContextRecord(record *ContextRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidContextRecord)
	}

	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContextRecord, ErrEmptyID)
	}

	if record.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContextRecord, ErrEmptyContent)
	}

	if err := ValidateRecordType(record.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContextRecord, err)
	}

	if !IsValidTimestamp(record.Date) {
		return fmt.Errorf("%w: %w", ErrInvalidContextRecord, ErrInvalidTimestamp)
	}

	if err := ValidateEmotionProfile(&record.Emotions); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContextRecord, err)
	}

	return nil
}

// ValidateEmotionProfile validates an EmotionProfile according to domain rules.
//
// Validation rules:
//   - OverallScore must be 0 (not yet analyzed) or within [1, 5]
//   - DominantEmotions must not exceed 3 labels
//
// NOT validated:
//   - EmotionScores (optional display data; any contents accepted)
func ValidateEmotionProfile(profile *EmotionProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidEmotionProfile)
	}

	if profile.OverallScore != 0 && (profile.OverallScore < 1 || profile.OverallScore > 5) {
		return fmt.Errorf("%w: %w (got %v)", ErrInvalidEmotionProfile, ErrInvalidOverallScore, profile.OverallScore)
	}

	if len(profile.DominantEmotions) > 3 {
		return fmt.Errorf("%w: %w", ErrInvalidEmotionProfile, ErrTooManyDominantEmotions)
	}

	return nil
}

// ValidateRecordType validates that a RecordType has a valid value.
func ValidateRecordType(kind RecordType) error {
	switch kind {
	case RecordTypeDiary, RecordTypeAnswer, RecordTypeReflection:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidRecordType, kind)
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
