package record

import (
	"testing"
	"time"

	"github.com/deespora/backoffice/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name string
		json string
		want types.RecordStatus
	}{
		{"onsale code", `{"dates":{"status":{"code":"onsale"}}}`, types.StatusActive},
		{"offsale code", `{"dates":{"status":{"code":"offsale"}}}`, types.StatusInactive},
		{"cancelled code", `{"dates":{"status":{"code":"cancelled"}}}`, types.StatusInactive},
		{"unrecognised code", `{"dates":{"status":{"code":"rescheduled"}}}`, types.StatusUnknown},
		{"code wins over boolean", `{"status":false,"dates":{"status":{"code":"onsale"}}}`, types.StatusActive},
		{"boolean true", `{"status":true}`, types.StatusActive},
		{"boolean false", `{"status":false}`, types.StatusInactive},
		{"isActive false", `{"isActive":false}`, types.StatusInactive},
		{"string Active", `{"status":"Active"}`, types.StatusActive},
		{"string suspended", `{"status":"suspended"}`, types.StatusInactive},
		{"string disabled", `{"status":"DISABLED"}`, types.StatusInactive},
		{"unrecognised string falls back", `{"status":"pending"}`, DefaultStatus},
		{"no signal", `{"title":"x"}`, DefaultStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatus(gjson.Parse(tt.json)))
		})
	}
}

func TestExtractID(t *testing.T) {
	assert.Equal(t, "abc", FromJSON([]byte(`{"_id":"abc","id":"def"}`), types.KindEvents).ID)
	assert.Equal(t, "def", FromJSON([]byte(`{"id":"def"}`), types.KindEvents).ID)
	assert.Equal(t, "1", FromJSON([]byte(`{"id":1}`), types.KindEvents).ID)
	assert.Equal(t, "7", FromJSON([]byte(`{"_id":null,"id":7}`), types.KindEvents).ID)
	assert.Equal(t, "65f0", FromJSON([]byte(`{"_id":{"$oid":"65f0"}}`), types.KindEvents).ID)
	assert.Equal(t, "", FromJSON([]byte(`{"title":"no id"}`), types.KindEvents).ID)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Jazz Night", FromJSON([]byte(`{"title":"Jazz Night","name":"ignored"}`), types.KindEvents).DisplayName)
	assert.Equal(t, "Mama Put", FromJSON([]byte(`{"name":"Mama Put"}`), types.KindRestaurants).DisplayName)
	assert.Equal(t, "Ada Obi", FromJSON([]byte(`{"firstName":"Ada","lastName":"Obi"}`), types.KindUsers).DisplayName)
	assert.Equal(t, "Ada", FromJSON([]byte(`{"firstName":"Ada"}`), types.KindUsers).DisplayName)
	assert.Equal(t, NotAvailable, FromJSON([]byte(`{}`), types.KindUsers).DisplayName)
}

func TestDates(t *testing.T) {
	rec := FromJSON([]byte(`{
		"createdAt": "2024-01-10T08:30:00Z",
		"dates": {"start": {"localDate": "2024-03-02", "localTime": "19:00:00"}}
	}`), types.KindEvents)

	require.NotNil(t, rec.CreatedAt)
	assert.True(t, rec.CreatedAt.Equal(time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)))
	require.NotNil(t, rec.StartDate)
	assert.True(t, rec.StartDate.Equal(time.Date(2024, 3, 2, 19, 0, 0, 0, time.Local)))
	assert.Equal(t, rec.StartDate, rec.EffectiveDate())

	users := FromJSON([]byte(`{"onboardingDate":"2024-06-01"}`), types.KindUsers)
	require.NotNil(t, users.CreatedAt)
	assert.True(t, users.CreatedAt.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)))
	assert.Nil(t, users.StartDate)
	assert.Equal(t, users.CreatedAt, users.EffectiveDate())

	bad := FromJSON([]byte(`{"createdAt":"yesterday","date":{"nested":true}}`), types.KindEvents)
	assert.Nil(t, bad.CreatedAt)
	assert.Nil(t, bad.StartDate)
	assert.Nil(t, bad.EffectiveDate())

	millis := FromJSON([]byte(`{"createdAt":1704067200000}`), types.KindEvents)
	require.NotNil(t, millis.CreatedAt)
	assert.Equal(t, int64(1704067200), millis.CreatedAt.Unix())
}

func TestLocationAndCategory(t *testing.T) {
	event := FromJSON([]byte(`{
		"name": "Afrobeats Live",
		"_embedded": {"venues": [{"name": "O2", "city": {"name": "London"}, "state": {"stateCode": "LDN"}}]},
		"classifications": [{"segment": {"name": "Music"}}],
		"promoter": {"name": "Live Nation"}
	}`), types.KindEvents)
	assert.Equal(t, "London", event.City)
	assert.Equal(t, "LDN", event.State)
	assert.Equal(t, "London, LDN", event.DisplayLocation())
	assert.Equal(t, "O2", event.Location)
	assert.Equal(t, "Music", event.Category)
	assert.Equal(t, "Live Nation", event.Organizer)

	venue := FromJSON([]byte(`{"name":"Suya Spot","location":"Peckham"}`), types.KindRestaurants)
	assert.Equal(t, "Peckham", venue.DisplayLocation())
	assert.Equal(t, "Restaurants", venue.Category)

	user := FromJSON([]byte(`{"firstName":"Ada"}`), types.KindUsers)
	assert.Equal(t, NotAvailable, user.DisplayLocation())
	assert.Equal(t, "", user.Category)
}

func TestPriceRange(t *testing.T) {
	rec := FromJSON([]byte(`{"priceRanges":[{"min":10,"max":25.5,"currency":"USD"}]}`), types.KindEvents)
	require.NotNil(t, rec.Price)
	assert.True(t, rec.Price.Min.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "10.00 - 25.50 USD", rec.Price.String())

	flat := FromJSON([]byte(`{"price":"$40"}`), types.KindCatering)
	require.NotNil(t, flat.Price)
	assert.Equal(t, "40.00", flat.Price.String())

	assert.Nil(t, FromJSON([]byte(`{"price":"free"}`), types.KindCatering).Price)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, FromJSON([]byte(`{"role":"Super-Admin"}`), types.KindUsers).IsAdmin())
	assert.False(t, FromJSON([]byte(`{"role":"user","email":"admin@x.com"}`), types.KindUsers).IsAdmin())
	assert.True(t, FromJSON([]byte(`{"email":"admin@x.com"}`), types.KindUsers).IsAdmin())
	assert.True(t, FromJSON([]byte(`{"firstName":"AdminBot"}`), types.KindUsers).IsAdmin())
	assert.False(t, FromJSON([]byte(`{"email":"ada@x.com"}`), types.KindUsers).IsAdmin())
}

func TestPhase(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	at := func(d int) Record {
		ts := time.Date(2024, 5, d, 20, 0, 0, 0, time.UTC)
		return Record{StartDate: &ts}
	}
	assert.Equal(t, types.EventPhaseUpcoming, at(11).Phase(now, time.UTC))
	assert.Equal(t, types.EventPhaseOngoing, at(10).Phase(now, time.UTC))
	assert.Equal(t, types.EventPhasePast, at(9).Phase(now, time.UTC))
	assert.Equal(t, types.EventPhaseUpcoming, Record{}.Phase(now, time.UTC))
}

func TestFromMapKeepsRaw(t *testing.T) {
	raw := map[string]any{"id": "u1", "firstName": "Ada", "status": true, "nested": map[string]any{"k": "v"}}
	rec := FromMap(raw, types.KindUsers)
	assert.Equal(t, "u1", rec.ID)
	assert.Equal(t, types.StatusActive, rec.Status)
	assert.Equal(t, "v", rec.Raw["nested"].(map[string]any)["k"])

	inactive := rec.WithStatus(types.StatusInactive)
	assert.Equal(t, types.StatusInactive, inactive.Status)
	assert.Equal(t, types.StatusActive, rec.Status)
}

func TestFromResultNeverPanicsOnNonObjects(t *testing.T) {
	for _, in := range []string{`null`, `"text"`, `42`, `[1,2]`, `{"title":{"deep":[1]}}`, ``} {
		assert.NotPanics(t, func() {
			rec := FromJSON([]byte(in), types.KindEvents)
			assert.Equal(t, "", rec.ID)
		})
	}
}
