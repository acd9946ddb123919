package parent

import (
	"context"
	"net/mail"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/childguard/app/core"
)

type Service struct {
	repo       Repository
	auth       Authenticator
	mailSvc    core.EmailService
	validate   *validator.Validate
	translator ut.Translator
}

func NewService(repo Repository, auth Authenticator, mailSvc core.EmailService, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{repo: repo, auth: auth, mailSvc: mailSvc, validate: validate, translator: translator}
}

// Register creates the parent document directly in the store; there is no
// external enrollment call on the parent path. A welcome email goes out
// when an address was provided.
func (svc *Service) Register(ctx context.Context, np NewParent) (Parent, error) {
	np.Name = core.CleanString(np.Name)
	np.Email = core.CleanString(np.Email, true /* lower */)
	np.Phone = core.CleanString(np.Phone)
	if err := svc.validate.Struct(np); err != nil {
		return Parent{}, core.TranslateErrors(err, svc.translator)
	}

	p, err := svc.repo.CreateParent(ctx, Parent{
		Name:      np.Name,
		Email:     np.Email,
		Phone:     np.Phone,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Parent{}, errors.Wrap(err, "creating parent")
	}

	if p.Email != "" {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Name: p.Name, Address: p.Email}},
			Subject: "Welcome",
			Body: "Hi " + p.Name + ",\n\n" +
				"Your parent account has been created. You can now sign in and follow " +
				"your children's attendance and teacher comments.",
		})
	}
	return p, nil
}

// Login delegates entirely to the remote endpoint; its detail message (when
// present) travels back inside a *LoginError.
func (svc *Service) Login(ctx context.Context, email, password string) (Account, error) {
	return svc.auth.Login(ctx, core.CleanString(email, true /* lower */), password)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Parent, error) {
	return svc.repo.GetParent(ctx, id)
}

// QueryAll lists parents for the registration form's parent picker.
func (svc *Service) QueryAll(ctx context.Context) ([]Parent, error) {
	return svc.repo.QueryAllParents(ctx)
}
