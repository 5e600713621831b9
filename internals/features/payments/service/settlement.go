package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"artsadventure_backend/internals/features/payments/model"
)

// ErrNotFound is what Store lookups return when a referenced entity does not
// exist.
var ErrNotFound = errors.New("record not found")

// Step error codes surfaced in the composite result.
const (
	CodeInvalidReference = "InvalidReference"
	CodeStorageFailure   = "StorageFailure"
)

// Store is the narrow storage surface the settlement workflow needs. Each
// method is a single-entity mutation or lookup; there is no cross-entity
// transaction behind it.
type Store interface {
	InsertPayment(ctx context.Context, p *model.PaymentModel) error
	DeleteSelection(ctx context.Context, selectionID uuid.UUID) (int64, error)
	IncrementEnrolled(ctx context.Context, classID uuid.UUID) (int64, error)
	DecrementAvailableSeats(ctx context.Context, classID uuid.UUID) (int64, error)
	FindClassOwnerEmail(ctx context.Context, classID uuid.UUID) (string, error)
	IncrementInstructorStudents(ctx context.Context, email string) (int64, error)
}

type SettleInput struct {
	Email           string
	Amount          float64
	ClassID         uuid.UUID
	SelectionID     uuid.UUID
	GatewayProvider string
	TransactionID   string
}

// StepResult reports one settlement step. RowsAffected mirrors what the
// storage layer matched; zero rows with Ok=true means the step had nothing to
// do (e.g. the selection was already removed).
type StepResult struct {
	Ok           bool   `json:"ok"`
	RowsAffected int64  `json:"rows_affected"`
	Code         string `json:"code,omitempty"`
	Error        string `json:"error,omitempty"`
}

// SettlementResult is the composite acknowledgement: one entry per step,
// field names matching the wire contract clients already consume. There is
// deliberately no single pass/fail verdict.
type SettlementResult struct {
	InsertResult           StepResult `json:"insertResult"`
	DeleteResult           StepResult `json:"deleteResult"`
	UpdateResult           StepResult `json:"updateResult"`
	UpdateSeatsResult      StepResult `json:"updateSeatsResult"`
	UpdateInstructorResult StepResult `json:"updateInstructorResult"`
}

func (r SettlementResult) AllOk() bool {
	return r.InsertResult.Ok && r.DeleteResult.Ok && r.UpdateResult.Ok &&
		r.UpdateSeatsResult.Ok && r.UpdateInstructorResult.Ok
}

func (r SettlementResult) FailedSteps() []string {
	var failed []string
	for _, s := range []struct {
		name string
		res  StepResult
	}{
		{"insert", r.InsertResult},
		{"delete_selection", r.DeleteResult},
		{"increment_enrolled", r.UpdateResult},
		{"decrement_seats", r.UpdateSeatsResult},
		{"credit_instructor", r.UpdateInstructorResult},
	} {
		if !s.res.Ok {
			failed = append(failed, s.name)
		}
	}
	return failed
}

/* ===================== Service ===================== */

type SettlementService struct {
	store Store
}

func NewSettlementService(store Store) *SettlementService {
	return &SettlementService{store: store}
}

// Settle runs the five-step settlement: insert the payment record, delete the
// superseding cart entry, occupy one seat (two counter updates), credit the
// owning instructor. Steps are committed independently and never rolled back;
// a failed step is reported in the composite result while later steps still
// run. The one exception is the payment insert itself: it is the commit
// point, and if it fails nothing else may touch storage.
//
// Settle is NOT idempotent: retrying a settled payment inserts a second
// payment row and double-increments the counters. Callers must not retry
// blindly on ambiguous failure.
func (s *SettlementService) Settle(ctx context.Context, in SettleInput) (SettlementResult, error) {
	var res SettlementResult

	payment := &model.PaymentModel{
		PaymentID:              uuid.New(),
		PaymentEmail:           strings.ToLower(strings.TrimSpace(in.Email)),
		PaymentAmount:          in.Amount,
		PaymentCurrency:        "usd",
		PaymentClassID:         in.ClassID,
		PaymentSelectionID:     in.SelectionID,
		PaymentGatewayProvider: in.GatewayProvider,
		PaymentStatus:          model.PaymentStatusPaid,
	}
	if payment.PaymentGatewayProvider == "" {
		payment.PaymentGatewayProvider = model.PaymentProviderStripe
	}
	if in.TransactionID != "" {
		tx := in.TransactionID
		payment.PaymentTransactionID = &tx
	}

	// Step 1 — commit point.
	if err := s.store.InsertPayment(ctx, payment); err != nil {
		res.InsertResult = StepResult{Code: CodeStorageFailure, Error: err.Error()}
		return res, err
	}
	res.InsertResult = StepResult{Ok: true, RowsAffected: 1}

	// Step 2 — drop the cart entry. Zero rows is success: deletion is
	// idempotent, the entry may already be gone.
	if n, err := s.store.DeleteSelection(ctx, in.SelectionID); err != nil {
		res.DeleteResult = StepResult{Code: CodeStorageFailure, Error: err.Error()}
	} else {
		res.DeleteResult = StepResult{Ok: true, RowsAffected: n}
	}

	// Steps 3 & 4 — occupy one seat. Two unconditional counter updates, no
	// compare-and-swap: concurrent settlement of the last seat can drive
	// available_seats negative.
	if n, err := s.store.IncrementEnrolled(ctx, in.ClassID); err != nil {
		res.UpdateResult = StepResult{Code: CodeStorageFailure, Error: err.Error()}
	} else {
		res.UpdateResult = StepResult{Ok: true, RowsAffected: n}
	}
	if n, err := s.store.DecrementAvailableSeats(ctx, in.ClassID); err != nil {
		res.UpdateSeatsResult = StepResult{Code: CodeStorageFailure, Error: err.Error()}
	} else {
		res.UpdateSeatsResult = StepResult{Ok: true, RowsAffected: n}
	}

	// Step 5 — credit the owning instructor. A missing class fails only this
	// step; steps 1-4 stay committed.
	owner, err := s.store.FindClassOwnerEmail(ctx, in.ClassID)
	switch {
	case errors.Is(err, ErrNotFound):
		res.UpdateInstructorResult = StepResult{Code: CodeInvalidReference, Error: "class not found"}
	case err != nil:
		res.UpdateInstructorResult = StepResult{Code: CodeStorageFailure, Error: err.Error()}
	default:
		if n, err := s.store.IncrementInstructorStudents(ctx, owner); err != nil {
			res.UpdateInstructorResult = StepResult{Code: CodeStorageFailure, Error: err.Error()}
		} else {
			res.UpdateInstructorResult = StepResult{Ok: true, RowsAffected: n}
		}
	}

	if !res.AllOk() {
		log.Printf("[ALERT] settlement partially failed payment_id=%s class_id=%s steps=%v",
			payment.PaymentID, in.ClassID, res.FailedSteps())
	}
	return res, nil
}
