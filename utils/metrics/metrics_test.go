package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPlan(t *testing.T) {
	before := testutil.ToFloat64(PlansTotal.WithLabelValues("all_grouped"))
	RecordPlan("all_grouped")
	RecordPlan("all_grouped")
	assert.Equal(t, before+2, testutil.ToFloat64(PlansTotal.WithLabelValues("all_grouped")))
}

func TestRecordTimeout(t *testing.T) {
	before := testutil.ToFloat64(StoreTimeoutsTotal.WithLabelValues("ListContent"))
	RecordTimeout("ListContent")
	assert.Equal(t, before+1, testutil.ToFloat64(StoreTimeoutsTotal.WithLabelValues("ListContent")))
}

func TestRecordQuery(t *testing.T) {
	RecordQuery("ListContent", "ok", 0.02)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(QueryDuration, "genonaut_content_query_duration_seconds"), 1)
}
