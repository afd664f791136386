package valapi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTiers = []ContentTier{
	{UUID: "12683d76-48d7-84a3-4e09-6985794f0445", DevName: "Base", DisplayName: "SE_UIName", Rank: 0},
	{UUID: "0cebb8be-46d7-c12a-d306-e9907bfc5a25", DevName: "Midrange", DisplayName: "DE_UIName", Rank: 1},
	{UUID: "60bca009-4182-7998-dee7-b8a2558dc369", DevName: "BattlePass", DisplayName: "PE_UIName", Rank: 2},
	{UUID: "e046854e-406c-37f4-6607-19a9ba8426fc", DevName: "Exclusive", DisplayName: "XE_UIName", Rank: 3},
	{UUID: "411e4a55-4e59-7757-41f0-86a53f101bb5", DevName: "Ultra", DisplayName: "UE_UIName", Rank: 4},
}

func TestTierBook(t *testing.T) {
	book := MakeTierBook(testTiers)

	type Test struct {
		uuid     string
		expName  string
		expPrice string
	}
	tests := []Test{
		{uuid: "12683d76-48d7-84a3-4e09-6985794f0445", expName: "Select", expPrice: "875 VP"},
		{uuid: "0cebb8be-46d7-c12a-d306-e9907bfc5a25", expName: "Deluxe", expPrice: "1,275 VP"},
		{uuid: "60bca009-4182-7998-dee7-b8a2558dc369", expName: "Premium", expPrice: "1,775 VP"},
		{uuid: "e046854e-406c-37f4-6607-19a9ba8426fc", expName: "Exclusive", expPrice: "2,175 VP"},
		{uuid: "411e4a55-4e59-7757-41f0-86a53f101bb5", expName: "Ultra", expPrice: "2,475 VP"},
		{uuid: "not-a-tier", expName: "Unknown", expPrice: "Unknown"},
		{uuid: "", expName: "Unknown", expPrice: "Unknown"},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert.Equal(t, test.expName, book.Name(test.uuid))
			assert.Equal(t, test.expPrice, book.Price(test.uuid))
		})
	}
}

func TestTierBookUnmappedDevName(t *testing.T) {
	book := MakeTierBook([]ContentTier{{UUID: "u1", DevName: "NewTier", DisplayName: "Radiant"}})

	assert.Equal(t, "Radiant", book.Name("u1"))
	assert.Equal(t, "Unknown", book.Price("u1"))
}
