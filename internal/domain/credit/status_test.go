package credit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/montesagrado/camposanto-api/internal/domain/credit"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	cases := []struct {
		name    string
		status  entity.InstallmentStatus
		dueDate time.Time
		want    credit.DisplayStatus
	}{
		{"pagada con vencimiento futuro", entity.InstallmentStatusPaid, future, credit.DisplayPaid},
		{"pagada con vencimiento pasado sigue pagada", entity.InstallmentStatusPaid, past, credit.DisplayPaid},
		{"pendiente sin vencer", entity.InstallmentStatusPending, future, credit.DisplayPending},
		{"pendiente vencida", entity.InstallmentStatusPending, past, credit.DisplayOverdue},
		{"pendiente que vence exactamente ahora no está vencida", entity.InstallmentStatusPending, now, credit.DisplayPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, credit.Classify(tc.status, tc.dueDate, now))
		})
	}
}
