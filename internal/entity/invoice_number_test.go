package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/erp/internal/entity"
)

func TestNextInvoiceNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		series   string
		existing []string
		want     string
		wantErr  error
	}{
		{
			name:   "first invoice of the year",
			series: "FAT",
			want:   "FAT2025000000001",
		},
		{
			name:     "max sequence plus one",
			series:   "APF",
			existing: []string{"APF2025000000641", "APF2025000000007", "APF2025000000640"},
			want:     "APF2025000000642",
		},
		{
			name:     "other series and years are ignored",
			series:   "FAT",
			existing: []string{"ABC2025000000900", "FAT2024000000500", "FAT2025000000002"},
			want:     "FAT2025000000003",
		},
		{
			name:     "legacy numbers contribute trailing digits",
			series:   "FAT",
			existing: []string{"FAT-2025-0012", "FAT2025000000004"},
			want:     "FAT2025000000013",
		},
		{
			name:     "garbage is skipped",
			series:   "FAT",
			existing: []string{"", "FAT2025ABCDEFGHI", "hello"},
			want:     "FAT2025000000001",
		},
		{
			name:    "invalid series",
			series:  "fa",
			wantErr: entity.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entity.NextInvoiceNumber(tt.series, 2025, tt.existing)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Len(t, got, 16)
		})
	}
}

func TestFormatInvoiceNumber_OutOfRange(t *testing.T) {
	t.Parallel()

	_, err := entity.FormatInvoiceNumber("FAT", 2025, 1_000_000_000)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = entity.FormatInvoiceNumber("FAT", 2025, 0)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestTransferStatusFromState(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.TransferDelivered, entity.TransferStatusFromState(5))
	require.Equal(t, entity.TransferFailed, entity.TransferStatusFromState(4))
	require.Equal(t, entity.TransferProcessing, entity.TransferStatusFromState(1))
	require.Equal(t, entity.TransferProcessing, entity.TransferStatusFromState(3))
	require.Equal(t, entity.TransferQueued, entity.TransferStatusFromState(2))
}
