package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestToResponse_CopiesFields(t *testing.T) {
	s := Service{
		ID:           1,
		ServiceName:  "Plumbing",
		Title:        "Expert Plumbing Fix",
		ProviderName: "Ahmed Musa",
		Location:     ptr("Khartoum"),
		Description:  ptr("Leak repairs"),
		Rating:       ptr(4.75),
		PricePerHour: ptr(5000.0),
	}

	r := ToResponse(s)

	assert.Equal(t, "Plumbing", r.ServiceName)
	assert.Equal(t, "Expert Plumbing Fix", r.Title)
	assert.Equal(t, "Ahmed Musa", r.ProviderName)
	assert.Equal(t, "Khartoum", *r.Location)
	assert.Equal(t, "Leak repairs", *r.Description)
	assert.Equal(t, 4.75, r.Rating)
	assert.Equal(t, 5000.0, r.PricePerHour)
}

func TestToResponse_NullNumbersBecomeZero(t *testing.T) {
	r := ToResponse(Service{ServiceName: "Painting", Title: "Walls", ProviderName: "Alwan Plus"})

	assert.Equal(t, 0.0, r.Rating)
	assert.Equal(t, 0.0, r.PricePerHour)
	assert.Nil(t, r.Location)
	assert.Nil(t, r.Description)
}

func TestServiceResponse_WireKeys(t *testing.T) {
	b, err := json.Marshal(ToResponse(Service{ServiceName: "Handyman", Title: "Fix-It-All Guy", ProviderName: "FixIt Hub"}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Len(t, got, 7)
	for _, key := range []string{"serviceName", "Title", "providerName", "location", "serdescription", "rating", "pricePerHour"} {
		assert.Contains(t, got, key)
	}
	assert.Nil(t, got["location"])
	assert.Nil(t, got["serdescription"])
	assert.Equal(t, 0.0, got["rating"])
	assert.Equal(t, 0.0, got["pricePerHour"])
}

func TestToResponses_NeverNil(t *testing.T) {
	out := ToResponses(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestToResponses_KeepsOrder(t *testing.T) {
	out := ToResponses([]Service{{ServiceName: "b"}, {ServiceName: "a"}, {ServiceName: "c"}})
	require.Len(t, out, 3)
	assert.Equal(t, "b", out[0].ServiceName)
	assert.Equal(t, "a", out[1].ServiceName)
	assert.Equal(t, "c", out[2].ServiceName)
}

func TestServiceTableName(t *testing.T) {
	assert.Equal(t, "services", Service{}.TableName())
}
