package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/mailer"
	repo "storefront/internal/repository"
)

type OrderUsecase struct {
	tx         repo.TransactionManager
	orderRepo  repo.OrderRepository
	itemRepo   repo.OrderItemRepository
	cartRepo   repo.CartRepository
	reviewRepo repo.ReviewRepository
	userRepo   repo.UserRepository
	mails      MailEnqueuer
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orderRepo repo.OrderRepository,
	itemRepo repo.OrderItemRepository,
	cartRepo repo.CartRepository,
	reviewRepo repo.ReviewRepository,
	userRepo repo.UserRepository,
	mails MailEnqueuer,
) *OrderUsecase {
	return &OrderUsecase{
		tx:         tx,
		orderRepo:  orderRepo,
		itemRepo:   itemRepo,
		cartRepo:   cartRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		mails:      mails,
	}
}

type CheckoutOutput struct {
	OrderID    int64 `json:"order_id"`
	TotalPrice int64 `json:"total_price"`
	ItemCount  int   `json:"item_count"`
}

// 請求メールの組み立て用
type invoiceLine struct {
	name      string
	storeName string
	unitPrice int64
	quantity  int64
}

// Checkout はカートの中身を1つの注文に確定する。
// 在庫の減算は条件付きUPDATEで行い、足りなければ全体をロールバックする。
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var (
		out   CheckoutOutput
		lines []invoiceLine
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindActiveByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}
		if err != nil {
			return err
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		var (
			total      int64
			orderItems []model.OrderItem
		)
		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				//消えた商品が混ざっていたら確定させない
				return NewHTTPError(http.StatusConflict, "an item in your cart is no longer available")
			}
			if err != nil {
				return err
			}

			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, p.ID, ci.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				//最新の在庫数を提示して全体を取り消す
				latest, err := r.Products().FindByID(ctx, p.ID)
				if err != nil {
					return err
				}
				return NewHTTPError(http.StatusConflict,
					fmt.Sprintf("not enough stock for %s, only %d available", p.Name, latest.Stock))
			}

			if err := r.Inventory().CreateAdjustment(ctx, model.StockAdjustment{
				ProductID:    p.ID,
				VendorUserID: 0,
				Delta:        -ci.Quantity,
				Reason:       "order",
			}); err != nil {
				return err
			}

			storeName := ""
			if s, err := r.Stores().FindByID(ctx, p.StoreID); err == nil {
				storeName = s.Name
			}

			total += p.Price * ci.Quantity
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           p.ID,
				ProductNameSnapshot: p.Name,
				UnitPriceSnapshot:   p.Price,
				Quantity:            ci.Quantity,
			})
			lines = append(lines, invoiceLine{
				name:      p.Name,
				storeName: storeName,
				unitPrice: p.Price,
				quantity:  ci.Quantity,
			})
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			BuyerUserID: userID,
			TotalPrice:  total,
		})
		if err != nil {
			return err
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return err
		}

		if err := r.Carts().UpdateStatus(ctx, cart.ID, model.CartStatusCheckedOut); err != nil {
			return err
		}
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return err
		}

		out = CheckoutOutput{
			OrderID:    orderID,
			TotalPrice: total,
			ItemCount:  len(orderItems),
		}
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return CheckoutOutput{}, he
		}
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//請求メールはベストエフォート。失敗しても注文は成立している。
	if buyer, err := u.userRepo.FindByID(ctx, userID); err == nil && buyer != nil {
		u.mails.Enqueue(mailer.Message{
			To:      buyer.Email,
			Subject: fmt.Sprintf("Your order #%d", out.OrderID),
			Body:    buildInvoiceMailBody(out.OrderID, lines, out.TotalPrice),
		})
	}

	return out, nil
}

func buildInvoiceMailBody(orderID int64, lines []invoiceLine, total int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order #%d placed on %s.\n\n", orderID, time.Now().Format("2006-01-02"))
	for _, l := range lines {
		fmt.Fprintf(&b, "- %s (%s): %d x %d = %d\n", l.name, l.storeName, l.unitPrice, l.quantity, l.unitPrice*l.quantity)
	}
	fmt.Fprintf(&b, "\nTotal: %d\n", total)
	return b.String()
}

type OrderListOutput struct {
	Orders []model.Order `json:"orders"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page int, limit int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	orders, total, err := u.orderRepo.ListByBuyerID(ctx, userID, page, limit)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListOutput{
		Orders: orders,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

type OrderItemOutput struct {
	model.OrderItem
	HasReviewed bool `json:"has_reviewed"`
}

type OrderDetailOutput struct {
	Order model.Order       `json:"order"`
	Items []OrderItemOutput `json:"items"`
}

// 他人の注文は存在ごと隠す（404）
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderDetailOutput, error) {
	if userID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if order.BuyerUserID != userID {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	items, err := u.itemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := OrderDetailOutput{Order: order, Items: []OrderItemOutput{}}
	for _, it := range items {
		reviewed, err := u.reviewRepo.ExistsByBuyerAndProduct(ctx, userID, it.ProductID)
		if err != nil {
			return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out.Items = append(out.Items, OrderItemOutput{OrderItem: it, HasReviewed: reviewed})
	}

	return out, nil
}
