package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const VoucherCodeLength = 5

var ErrVoucherMinting = errors.New("failed to mint vouchers")

// Voucher is a redemption code for one purchased unit. Vouchers belong
// exclusively to their order and exist only once the order is completed.
type Voucher struct {
	id        uuid.UUID
	orderID   uuid.UUID
	code      string
	isPrint   bool
	createdAt time.Time
}

func ReconstructVoucher(id, orderID uuid.UUID, code string, isPrint bool, createdAt time.Time) Voucher {
	return Voucher{
		id:        id,
		orderID:   orderID,
		code:      code,
		isPrint:   isPrint,
		createdAt: createdAt,
	}
}

func (v Voucher) ID() uuid.UUID        { return v.id }
func (v Voucher) OrderID() uuid.UUID   { return v.orderID }
func (v Voucher) Code() string         { return v.code }
func (v Voucher) IsPrint() bool        { return v.isPrint }
func (v Voucher) CreatedAt() time.Time { return v.createdAt }

// CodeGenerator produces opaque voucher codes. Codes are random and not
// checked against persisted history; the space is large relative to any
// single order, and per-order duplicates are retried below.
type CodeGenerator interface {
	Generate(length int) (string, error)
}

// mintVouchers creates n vouchers with distinct codes for one order.
func mintVouchers(orderID uuid.UUID, n int32, gen CodeGenerator) ([]Voucher, error) {
	const maxAttemptsPerCode = 10

	seen := make(map[string]struct{}, n)
	vouchers := make([]Voucher, 0, n)

	for range n {
		var code string
		for attempt := 0; ; attempt++ {
			c, err := gen.Generate(VoucherCodeLength)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[c]; !dup {
				code = c
				break
			}
			if attempt == maxAttemptsPerCode {
				return nil, ErrVoucherMinting
			}
		}

		seen[code] = struct{}{}
		vouchers = append(vouchers, Voucher{
			id:      uuid.New(),
			orderID: orderID,
			code:    code,
			isPrint: false,
		})
	}

	return vouchers, nil
}
