package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/crichub/handcricket-stats/internal/domain/teamdict"
)

type DictionaryService struct {
	repo teamdict.Repository
}

func NewDictionaryService(repo teamdict.Repository) *DictionaryService {
	return &DictionaryService{repo: repo}
}

// Get returns the active dictionary, falling back to the built-in mapping
// when no override was ever saved.
func (s *DictionaryService) Get(ctx context.Context) (teamdict.Dictionary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DictionaryService.Get")
	defer span.End()

	serialized, ok, err := s.repo.Load(ctx)
	if err != nil {
		return teamdict.Dictionary{}, fmt.Errorf("load team dictionary: %w", err)
	}
	if !ok {
		return teamdict.Default(), nil
	}
	return teamdict.ParseSerialized(serialized), nil
}

// Update replaces the stored dictionary with the given serialized form.
func (s *DictionaryService) Update(ctx context.Context, serialized string) (teamdict.Dictionary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DictionaryService.Update")
	defer span.End()

	serialized = strings.TrimSpace(serialized)
	if serialized == "" {
		return teamdict.Dictionary{}, fmt.Errorf("%w: dictionary payload is required", ErrInvalidInput)
	}

	dict := teamdict.ParseSerialized(serialized)
	if dict.Len() == 0 {
		return teamdict.Dictionary{}, fmt.Errorf("%w: no valid entries in dictionary payload", ErrInvalidInput)
	}

	if err := s.repo.Save(ctx, dict.Serialize()); err != nil {
		return teamdict.Dictionary{}, fmt.Errorf("save team dictionary: %w", err)
	}
	return dict, nil
}
