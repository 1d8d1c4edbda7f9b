package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAddresses(t *testing.T) {
	studentID := uuid.New()
	line2 := "Blok C"

	rows := BuildAddresses(studentID, []StudentAddressRequest{
		{Line1: "Jl. Merdeka 1", Line2: &line2, City: "Surabaya", State: "Jawa Timur", Pincode: "60111"},
		{Type: "permanent", Line1: "Jl. Kenanga 2", City: "Malang", State: "Jawa Timur", Pincode: "65112"},
	})

	require.Len(t, rows, 2)
	for i, r := range rows {
		assert.Equal(t, i+1, r.StudentAddressOrder, "urutan 1-based dari index array")
		assert.Equal(t, studentID, r.StudentAddressStudentID)
	}
	// tipe kosong jatuh ke "current"; alamat pertama = primary (order 1)
	assert.Equal(t, "current", rows[0].StudentAddressType)
	assert.Equal(t, "permanent", rows[1].StudentAddressType)

	assert.Empty(t, BuildAddresses(studentID, nil))
}

func TestFacilityFlagsToModel(t *testing.T) {
	studentID := uuid.New()

	m, err := FacilityFlagsToModel(studentID, map[string]bool{
		"transport": true,
		"hostel":    false,
	})
	require.NoError(t, err)
	assert.Equal(t, studentID, m.StudentFacilityStudentID)

	var flags map[string]bool
	require.NoError(t, json.Unmarshal(m.StudentFacilityFlags, &flags))
	assert.True(t, flags["transport"])
	assert.False(t, flags["hostel"])
}

func TestCreateStudentRequestToModel(t *testing.T) {
	dob := "2012-06-01"
	req := CreateStudentRequest{
		FirstName: "  Budi ",
		LastName:  "Santoso",
		Gender:    "Male",
		DOB:       &dob,
	}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Budi", m.StudentFirstName)
	assert.Equal(t, "male", m.StudentGender)
	assert.Equal(t, "active", m.StudentStatus)
	require.NotNil(t, m.StudentDOB)

	bad := "01/06/2012"
	req.DOB = &bad
	_, err = req.ToModel()
	assert.Error(t, err)
}
