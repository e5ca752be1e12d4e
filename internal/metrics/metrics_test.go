package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/peticao/internal/calculator"
)

func TestObserveSummary(t *testing.T) {
	before := testutil.ToFloat64(ClaimsComputed.WithLabelValues("estimativa", "low"))

	ObserveSummary(calculator.Compute(calculator.Facts{}, []calculator.Claim{
		{Type: "algo desconhecido"},
		{Type: "outro desconhecido"},
	}, nil))

	after := testutil.ToFloat64(ClaimsComputed.WithLabelValues("estimativa", "low"))
	if after-before != 2 {
		t.Errorf("counter increased by %v, want 2", after-before)
	}
}
