package main

import (
	"context"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/backend/core"
	"github.com/internhub/backend/core/user"
	emailsvc "github.com/internhub/backend/services/email"
	dummydb "github.com/internhub/backend/storage/database/dummy"
)

func newTestCLI(t *testing.T) (*commandLine, user.Repository) {
	t.Helper()

	db, err := dummydb.Open()
	require.NoError(t, err)
	repo := dummydb.NewUserRepository(db)

	conf := core.NewConfig()
	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	return &commandLine{
		usrSvc:   user.NewService(repo, emailsvc.NewConsoleServiceMock(conf), conf),
		validate: validate,
		migrate:  func() error { return nil },
	}, repo
}

func TestRunAddUser(t *testing.T) {
	cli, repo := newTestCLI(t)

	origReadPassword := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("V3ryS3cretW0rd!"), nil }
	defer func() { readPasswordFunc = origReadPassword }()

	err := cli.run([]string{"admin", "adduser", "-name", "Jane Doe", "-email", "Jane@InternHub.dev", "-admin"})
	require.NoError(t, err)

	usr, err := repo.GetUserByEmail(context.Background(), "jane@internhub.dev") // stored lowercase
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", usr.Name)
	assert.True(t, usr.IsAdmin)
	assert.True(t, usr.Active())
	assert.NoError(t, usr.CheckPassword("V3ryS3cretW0rd!"))

	// duplicate email is rejected
	err = cli.run([]string{"admin", "adduser", "-name", "Jane Again", "-email", "jane@internhub.dev"})
	assert.Error(t, err)
}

func TestRunUsage(t *testing.T) {
	cli, _ := newTestCLI(t)

	assert.Equal(t, errHelp, cli.run([]string{"admin"}))
	assert.Equal(t, errHelp, cli.run([]string{"admin", "frobnicate"}))
	assert.Equal(t, errHelp, cli.run([]string{"admin", "adduser", "-name", "No Email"}))
}

func TestRunMigrate(t *testing.T) {
	cli, _ := newTestCLI(t)

	var called bool
	cli.migrate = func() error { called = true; return nil }
	require.NoError(t, cli.run([]string{"admin", "migrate"}))
	assert.True(t, called)
}
