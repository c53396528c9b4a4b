package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func dupKey(index string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: podcast.episodes index: " + index + " dup key",
		}},
	}
}

func TestDuplicateEpisodeError(t *testing.T) {
	require.ErrorIs(t, duplicateEpisodeError(dupKey("slug_1")), ErrSlugTaken)
	require.ErrorIs(t, duplicateEpisodeError(dupKey("contentName_1")), ErrContentNameTaken)

	other := errors.New("something else")
	require.Equal(t, other, duplicateEpisodeError(other))
}
