package genreperrors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/genrep/internal/codefmt"
	"github.com/sublee/genrep/pkg/genreperrors"
)

func TestClassify(t *testing.T) {
	err := codefmt.Reject(nil, nil, genreperrors.ErrUnsupportedPattern, "embedded field X.Y is not representable")

	assert.ErrorIs(t, err, genreperrors.ErrUnsupportedPattern)
	assert.NotErrorIs(t, err, genreperrors.ErrUnsupportedMemberShape)
	assert.EqualError(t, err, "unsupported pattern: embedded field X.Y is not representable")
}

func TestKindsAreDistinct(t *testing.T) {
	kinds := []error{
		genreperrors.ErrUnsupportedDeclarationKind,
		genreperrors.ErrUnsupportedMemberShape,
		genreperrors.ErrUnsupportedPattern,
		genreperrors.ErrMissingTypeAnnotation,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
