package user

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordValidation(t *testing.T) {
	validate := validator.New()
	validate.RegisterStructValidation(newUserStructValidation, NewUser{})

	newUser := func(pwd string) NewUser {
		return NewUser{Name: "Jane Doe", Email: "jane@internhub.dev", Password: pwd}
	}

	tests := []struct {
		name    string
		nu      NewUser
		wantTag string
	}{
		{"valid", newUser("V3ryS3cretW0rd!"), ""},
		{"too short", newUser("aB3!"), pwdMinLenTag},
		{"whitespace", newUser("aB3! aB3!"), pwdNoSpaceTag},
		{"all numeric", newUser("20260831123"), pwdNotAllNumTag},
		{"no complexity", newUser("lowercaseonly"), pwdComplexityTag},
		{"similar to email", NewUser{Name: "Jane Doe", Email: "jane@internhub.dev", Password: "jane@internhub.deV1"}, pwdAttrSimTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.nu)
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok)
			require.Len(t, vErrs, 1)
			assert.Equal(t, tt.wantTag, vErrs[0].Tag())
		})
	}
}

func TestUserPassword(t *testing.T) {
	var usr User
	require.NoError(t, usr.SetPassword("V3ryS3cretW0rd!"))
	assert.NoError(t, usr.CheckPassword("V3ryS3cretW0rd!"))
	assert.Error(t, usr.CheckPassword("nope"))
}

func TestUserActive(t *testing.T) {
	var usr User
	assert.True(t, usr.Active()) // unset means active

	usr.SetActive(false)
	assert.False(t, usr.Active())

	usr.SetActive(true)
	assert.True(t, usr.Active())
}
