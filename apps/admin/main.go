package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/internhub/backend/core"
	"github.com/internhub/backend/core/user"
	emailsvc "github.com/internhub/backend/services/email"
	"github.com/internhub/backend/storage/database"
	sqlxrepos "github.com/internhub/backend/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	if err := database.CreateIfNotExist(conf); err != nil {
		log.Fatalf("creating database: %v", err)
	}
	db, err := database.Open(conf)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer func() { _ = db.Close() }()

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	cli := &commandLine{
		usrSvc:   user.NewService(sqlxrepos.NewUserRepository(db), emailsvc.NewConsoleService(conf), conf),
		validate: validate,
		migrate:  func() error { return database.Migrate(db) },
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			log.Fatalf("%v", err)
		}
		os.Exit(2)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
