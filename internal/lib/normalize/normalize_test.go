package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{in: "seat_class_id", want: "seatClassId"},
		{in: "total_price", want: "totalPrice"},
		{in: "name", want: "name"},
		{in: "pricePerNight", want: "pricePerNight"},
		{in: "", want: ""},
		{in: "_private", want: "Private"},
		{in: "trailing_", want: "trailing_"},
		{in: "double__under", want: "double_Under"},
		{in: "digit_1", want: "digit_1"},
		{in: "upper_Case", want: "upper_Case"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Key(tc.in))
			assert.Equal(t, tc.want, Key(Key(tc.in)), "key transform must be idempotent")
		})
	}
}

func TestKeysNested(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"booking_id": 7,
		"seat_class": map[string]any{
			"price_per_night": 30000,
			"features":        []any{"private_cabin", map[string]any{"is_vip": true}},
		},
		"accommodation": nil,
		"items":         []any{map[string]any{"image_url": "/a.jpg"}},
	}

	want := map[string]any{
		"bookingId": 7,
		"seatClass": map[string]any{
			"pricePerNight": 30000,
			"features":      []any{"private_cabin", map[string]any{"isVip": true}},
		},
		"accommodation": nil,
		"items":         []any{map[string]any{"imageUrl": "/a.jpg"}},
	}

	got := Keys(in)
	assert.Equal(t, want, got)
	assert.Equal(t, got, Keys(got), "normalizing twice must not change the result")
}

func TestKeysDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	inner := map[string]any{"next_launch": "March 15, 2025"}
	list := []any{inner}
	in := map[string]any{"destinations": list}

	_ = Keys(in)

	assert.Contains(t, inner, "next_launch")
	assert.NotContains(t, inner, "nextLaunch")
	assert.Equal(t, inner, list[0])
}

func TestKeysPrimitives(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, "snake_case", 42, 3.5, true} {
		assert.Equal(t, v, Keys(v))
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	type seatClass struct {
		ID            int64    `json:"id"`
		DestinationID int64    `json:"destinationId"`
		Price         int64    `json:"price"`
		Features      []string `json:"features"`
	}

	body := `[{"id": 2, "destination_id": 1, "price": 2100000, "features": ["Private cabin"]}]`

	var got []seatClass
	require.NoError(t, Decode(strings.NewReader(body), &got))

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].DestinationID)
	assert.Equal(t, int64(2100000), got[0].Price)
	assert.Equal(t, []string{"Private cabin"}, got[0].Features)
}

func TestDecodeInvalidJSON(t *testing.T) {
	t.Parallel()

	var v map[string]any
	assert.Error(t, Decode(strings.NewReader("not json"), &v))
}

func TestKeysCollisionsAreDeterministic(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"a_b":   "rewritten",
		"aB":    "camel",
		"x_yZ":  "lesser",
		"x_y_z": "greater",
	}

	for i := 0; i < 50; i++ {
		out := Keys(in).(map[string]any)

		require.Len(t, out, 2)
		assert.Equal(t, "camel", out["aB"])
		assert.Equal(t, "greater", out["xYZ"])
	}
}
