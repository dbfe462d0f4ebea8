package apiclient_test

import (
	"encoding/json"
	"testing"
	"time"

	"productivity-assistant/pkg/apiclient"
)

func TestTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", in: `"2024-05-01T14:00:00+02:00"`, want: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		{name: "naive micro", in: `"2024-05-01T14:00:00.123456"`, want: time.Date(2024, 5, 1, 14, 0, 0, 123456000, time.UTC)},
		{name: "date only", in: `"2024-05-01"`, want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "null", in: `null`},
		{name: "garbage", in: `"yesterday-ish"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got apiclient.Time
			err := json.Unmarshal([]byte(tt.in), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got.Time, tt.want)
			}
		})
	}
}

func TestTimePtr(t *testing.T) {
	if (apiclient.Time{}).Ptr() != nil {
		t.Error("expected nil for zero time")
	}
	now := time.Now()
	if p := (apiclient.Time{Time: now}).Ptr(); p == nil || !p.Equal(now) {
		t.Error("expected pointer to value")
	}
}
