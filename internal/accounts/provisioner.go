package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/movimentai/pkg"

	log "github.com/sirupsen/logrus"
)

const tempPasswordLength = 16

type provisionRepo interface {
	Create(ctx context.Context, account Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

type ProvisionResult struct {
	Account *Account
	// TempPassword is set only when the account was created now.
	TempPassword string
	Created      bool
}

// Provisioner creates accounts on behalf of someone else (payment webhook, operator CLI).
// Such accounts get a random temporary password and must reset it on first login.
type Provisioner struct {
	repo           provisionRepo
	hashPassword   func(string) (string, error)
	randStringFunc func(int) (string, error)
}

func NewProvisioner(repo provisionRepo) *Provisioner {
	return &Provisioner{
		repo:           repo,
		hashPassword:   pkg.HashPassword,
		randStringFunc: pkg.GenerateRandomString,
	}
}

// Provision returns the existing account for the email, or creates it.
func (p *Provisioner) Provision(ctx context.Context, email, name, createdVia string) (*ProvisionResult, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errors.New("email empty")
	}

	existing, err := p.repo.GetByEmail(ctx, email)
	if err == nil {
		log.Debugf("provision: account for %s already exists", email)
		return &ProvisionResult{Account: existing}, nil
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("get account by email: %w", err)
	}

	tempPassword, err := p.randStringFunc(tempPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generate temp password: %w", err)
	}
	hash, err := p.hashPassword(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("hash temp password: %w", err)
	}

	created, err := p.repo.Create(ctx, Account{
		Email:             email,
		Name:              name,
		PasswordHash:      hash,
		CreatedVia:        createdVia,
		MustResetPassword: true,
	})
	if errors.Is(err, ErrEmailTaken) {
		// lost a race with a concurrent provisioning of the same email
		existing, getErr := p.repo.GetByEmail(ctx, email)
		if getErr != nil {
			return nil, fmt.Errorf("get account after conflict: %w", getErr)
		}
		return &ProvisionResult{Account: existing}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	log.Infof("provision: account %s created via %s", created.ID, createdVia)
	return &ProvisionResult{
		Account:      created,
		TempPassword: tempPassword,
		Created:      true,
	}, nil
}
