package deliveryrepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func Test_IsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "driver unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "idx_deliveries_order_id"},
			want: true,
		},
		{
			name: "wrapped driver unique violation",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "other postgres error code",
			err:  &pgconn.PgError{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}
