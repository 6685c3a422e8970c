package lifecycle

import (
	"context"
	"errors"
	"strings"
	"time"

	appDomain "loanmarket-backend/internal/domain/application"
	archiveDomain "loanmarket-backend/internal/domain/archive"
	paymentDomain "loanmarket-backend/internal/domain/payment"
	productDomain "loanmarket-backend/internal/domain/product"
	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/internal/domain/uow"
	"loanmarket-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Usecase drives the loan application state machine: the decision axis
// (Pending -> Approved | Rejected) and the fee axis (Unpaid -> Paid), plus
// the counter bookkeeping and the approved-loan archive.
type Usecase struct {
	apps     appDomain.Repository
	products productDomain.Repository
	users    userDomain.Repository
	archive  archiveDomain.Repository
	tx       uow.UnitOfWork
	bridge   paymentDomain.Bridge

	feeAmountCents int64
	feeCurrency    string
	successURL     string
	cancelURL      string

	log *zap.Logger
}

type Options struct {
	FeeAmountCents int64
	FeeCurrency    string
	SuccessURL     string
	CancelURL      string
}

func NewUsecase(
	apps appDomain.Repository,
	products productDomain.Repository,
	users userDomain.Repository,
	arch archiveDomain.Repository,
	tx uow.UnitOfWork,
	bridge paymentDomain.Bridge,
	opts Options,
	log *zap.Logger,
) *Usecase {
	return &Usecase{
		apps:           apps,
		products:       products,
		users:          users,
		archive:        arch,
		tx:             tx,
		bridge:         bridge,
		feeAmountCents: opts.FeeAmountCents,
		feeCurrency:    opts.FeeCurrency,
		successURL:     opts.SuccessURL,
		cancelURL:      opts.CancelURL,
		log:            log,
	}
}

type SubmitInput struct {
	ProductID     string
	UserEmail     string
	FirstName     string
	LastName      string
	ContactNumber string
	NIDOrPassport string
	IncomeSource  string
	MonthlyIncome float64
	LoanAmount    float64
	ReasonForLoan string
	Address       string
}

// Submit creates a Pending/Unpaid application, snapshotting the product's
// title and rate at this instant, then bumps the applicant's counters.
// The counter bump is best-effort: the application is already the source
// of truth by the time it runs.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*appDomain.Application, error) {
	p, err := u.products.GetByProductID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productDomain.ErrNotFound
		}
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.UserEmail))
	a := &appDomain.Application{
		ApplicationID: id.NewID32(),
		ProductID:     p.ProductID,
		UserEmail:     email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		ContactNumber: in.ContactNumber,
		NIDOrPassport: in.NIDOrPassport,
		IncomeSource:  in.IncomeSource,
		MonthlyIncome: in.MonthlyIncome,
		LoanAmount:    in.LoanAmount,
		ReasonForLoan: in.ReasonForLoan,
		Address:       in.Address,
		LoanTitle:     p.Title,
		InterestRate:  p.InterestRate,
		Status:        appDomain.StatusPending,
		FeeStatus:     appDomain.FeeUnpaid,
		Date:          time.Now().UTC(),
	}
	if err := u.apps.Create(ctx, a); err != nil {
		return nil, err
	}

	u.adjustCounters(ctx, email, userDomain.CounterDelta{Applied: 1, Pending: 1})
	return a, nil
}

// InitiateFeePayment asks the payment bridge for a checkout session tagged
// with the application id. The application itself is not mutated.
func (u *Usecase) InitiateFeePayment(ctx context.Context, applicationID, payerEmail string) (*paymentDomain.Session, error) {
	if _, err := u.apps.GetByApplicationID(ctx, applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	return u.bridge.CreateCheckoutSession(ctx, paymentDomain.CheckoutInput{
		ApplicationID: applicationID,
		CustomerEmail: strings.ToLower(strings.TrimSpace(payerEmail)),
		AmountCents:   u.feeAmountCents,
		Currency:      u.feeCurrency,
		SuccessURL:    u.successURL,
		CancelURL:     u.cancelURL,
	})
}

// ConfirmFeePayment marks the fee paid in one single-row update. A second
// confirmation overwrites the reference and paid_at; client retries are
// expected to be absorbed by the idempotency middleware upstream.
func (u *Usecase) ConfirmFeePayment(ctx context.Context, applicationID, paymentRef string) (*appDomain.Application, error) {
	if strings.TrimSpace(paymentRef) == "" {
		return nil, appDomain.ErrEmptyPaymentRef
	}
	rows, err := u.apps.MarkPaid(ctx, applicationID, paymentRef, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, appDomain.ErrNotFound
	}
	return u.get(ctx, applicationID)
}

// Decide flips a Pending application to Approved or Rejected. The status
// write goes first (conditional on Pending, so a lost race surfaces as
// Conflict), then the archive insert on the approved path, then the
// counter adjustment — all inside one transaction when the store allows.
func (u *Usecase) Decide(ctx context.Context, applicationID string, decision appDomain.Status) (*appDomain.Application, error) {
	if decision != appDomain.StatusApproved && decision != appDomain.StatusRejected {
		return nil, appDomain.ErrBadDecision
	}
	if u.tx == nil {
		return nil, errors.New("lifecycle: unit of work not configured")
	}

	now := time.Now().UTC()
	var decided *appDomain.Application

	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appDomain.ErrNotFound
			}
			return err
		}

		rows, err := r.Applications.Decide(ctx, applicationID, decision, now)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Pending precondition failed: either decided by us just
			// before the read, or a concurrent decision won the race.
			return appDomain.ErrAlreadyDecided
		}

		delta := userDomain.CounterDelta{Pending: -1}
		switch decision {
		case appDomain.StatusApproved:
			a.Status = appDomain.StatusApproved
			a.ApprovedAt = &now
			delta.Approved = 1
			if err := r.Archive.Create(ctx, snapshotRecord(a, now)); err != nil {
				return err
			}
		case appDomain.StatusRejected:
			a.Status = appDomain.StatusRejected
			a.RejectedAt = &now
			delta.Rejected = 1
		}

		if err := r.Users.AdjustCounters(ctx, a.UserEmail, delta); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				u.log.Warn("counter adjustment skipped: user missing",
					zap.String("email", a.UserEmail),
					zap.String("application_id", applicationID))
			} else {
				return err
			}
		}

		decided = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

// Cancel is the borrower's self-service delete. Ownership is checked here
// (the auth gate only checks role), and the delete itself is conditional
// on Unpaid-and-not-Rejected so a racing payment or decision wins.
func (u *Usecase) Cancel(ctx context.Context, applicationID, requesterEmail string) error {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appDomain.ErrNotFound
		}
		return err
	}
	email := strings.ToLower(strings.TrimSpace(requesterEmail))
	if a.UserEmail != email {
		return appDomain.ErrNotOwner
	}

	rows, err := u.apps.DeleteUnpaid(ctx, applicationID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return appDomain.ErrNotCancellable
	}

	// The delta depends on the status the row had when it was removed:
	// an approved-but-unpaid cancel must roll back the approved count,
	// not pending (that one was already moved at decision time).
	delta := userDomain.CounterDelta{Applied: -1, Pending: -1}
	if a.Status == appDomain.StatusApproved {
		delta = userDomain.CounterDelta{Applied: -1, Approved: -1}
	}
	u.adjustCounters(ctx, email, delta)
	return nil
}

// RevokeApproval deletes the archive record only. The source application
// keeps its Approved status and its counters; this is a remove-from-list
// operation, not an un-approve.
func (u *Usecase) RevokeApproval(ctx context.Context, recordID string) error {
	rows, err := u.archive.Delete(ctx, recordID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return archiveDomain.ErrNotFound
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	return u.get(ctx, applicationID)
}

func (u *Usecase) ListByUser(ctx context.Context, email string) ([]appDomain.Application, error) {
	return u.apps.ListByUserEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (u *Usecase) ListAll(ctx context.Context) ([]appDomain.Application, error) {
	return u.apps.ListAll(ctx)
}

func (u *Usecase) ListPending(ctx context.Context) ([]appDomain.Application, error) {
	return u.apps.ListByStatus(ctx, appDomain.StatusPending)
}

func (u *Usecase) ListApproved(ctx context.Context) ([]archiveDomain.Record, error) {
	return u.archive.List(ctx)
}

func (u *Usecase) GetApproved(ctx context.Context, recordID string) (*archiveDomain.Record, error) {
	rec, err := u.archive.GetByRecordID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, archiveDomain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) PaymentDetails(ctx context.Context, sessionID string) (*paymentDomain.Session, error) {
	return u.bridge.GetSession(ctx, sessionID)
}

func (u *Usecase) get(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// adjustCounters applies a best-effort delta. A missing user is logged and
// ignored; the counts stay re-derivable from the applications table.
func (u *Usecase) adjustCounters(ctx context.Context, email string, d userDomain.CounterDelta) {
	if err := u.users.AdjustCounters(ctx, email, d); err != nil {
		u.log.Warn("counter adjustment failed",
			zap.String("email", email),
			zap.Error(err))
	}
}

func snapshotRecord(a *appDomain.Application, approvedAt time.Time) *archiveDomain.Record {
	return &archiveDomain.Record{
		RecordID:      id.NewID32(),
		ApplicationID: a.ApplicationID,
		ProductID:     a.ProductID,
		UserEmail:     a.UserEmail,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		ContactNumber: a.ContactNumber,
		NIDOrPassport: a.NIDOrPassport,
		IncomeSource:  a.IncomeSource,
		MonthlyIncome: a.MonthlyIncome,
		LoanAmount:    a.LoanAmount,
		ReasonForLoan: a.ReasonForLoan,
		Address:       a.Address,
		LoanTitle:     a.LoanTitle,
		InterestRate:  a.InterestRate,
		Status:        string(appDomain.StatusApproved),
		ApprovedAt:    approvedAt,
	}
}
