package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Darrenmartin378/MidtermLabExam/middleware"
	"github.com/Darrenmartin378/MidtermLabExam/models"
)

// -------- Request Structs --------

type CheckoutItem struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	Address       string         `json:"address" binding:"required"`
	Contact       string         `json:"contact" binding:"required"`
	PaymentMethod string         `json:"paymentMethod" binding:"required"`
}

// -------- Errors --------

// ErrNoItemsSelected means none of the requested cart-line ids resolved
// to a row in the caller's cart.
var ErrNoItemsSelected = errors.New("no items selected for checkout")

// StockUnavailableError aborts a checkout when a product cannot cover
// the requested quantity (or no longer exists).
type StockUnavailableError struct {
	ProductName string
}

func (e *StockUnavailableError) Error() string {
	return "stock unavailable for " + e.ProductName
}

const unknownProductName = "Unknown Product"

// -------- Helpers --------

// generateOrderRef builds a unique human-scannable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// Checkout converts the caller's selected cart lines into an order.
//
// Everything runs in one transaction: validation reads, the order and
// its items, the stock decrements, and the cart deletes. Any failure
// rolls the whole checkout back, so callers never observe a partial
// order, a stray stock decrement, or a half-emptied cart.
//
// Cart-line ids that don't belong to the caller (or don't exist) are
// dropped from the working set rather than rejected; an empty working
// set fails with ErrNoItemsSelected.
func Checkout(db *gorm.DB, userID uint, req CheckoutRequest) (uint, error) {
	ids := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ID)
	}

	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		// Ownership check by scoping: only the caller's rows resolve.
		var cartItems []models.CartItem
		if err := tx.Preload("Product").
			Where("user_id = ? AND id IN ?", userID, ids).
			Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrNoItemsSelected
		}

		var total float64
		var orderItems []models.OrderItem
		for _, item := range cartItems {
			if item.Product == nil {
				return &StockUnavailableError{ProductName: unknownProductName}
			}
			if item.Product.Stock < item.Quantity {
				return &StockUnavailableError{ProductName: item.Product.Name}
			}

			total += item.Product.Price * float64(item.Quantity)

			// Snapshot, not a reference: later price edits must never
			// change what this order was worth.
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
			})
		}

		order := models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			TotalPrice:    total,
			Status:        models.OrderStatusPending,
			Address:       req.Address,
			Contact:       req.Contact,
			PaymentMethod: req.PaymentMethod,
			CheckoutDate:  time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// The stock check above read possibly-stale rows. The
		// conditional decrement is the real guard: one indivisible
		// compare-and-decrement per product, so two competing
		// checkouts over the same stock can never both win.
		consumed := make([]uint, 0, len(cartItems))
		for _, item := range cartItems {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &StockUnavailableError{ProductName: item.Product.Name}
			}
			consumed = append(consumed, item.ID)
		}

		// Remove only the checked-out lines; the rest of the cart
		// stays untouched.
		if err := tx.Where("user_id = ? AND id IN ?", userID, consumed).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// -------- Handlers --------

// POST /api/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}

		orderID, err := Checkout(db, userID, req)
		if err != nil {
			var stockErr *StockUnavailableError
			switch {
			case errors.As(err, &stockErr):
				c.JSON(http.StatusBadRequest, gin.H{
					"message": fmt.Sprintf("Stock unavailable for %s", stockErr.ProductName),
				})
			case errors.Is(err, ErrNoItemsSelected):
				c.JSON(http.StatusBadRequest, gin.H{"message": "No items selected for checkout"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Checkout failed"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Checkout successful",
			"order_id": orderID,
		})
	}
}

// GET /api/orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Product").
			Order("checkout_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/my-orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Product").
			Order("checkout_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id (admin)
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Product").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}

		// Annotate a display name per item; the product may have been
		// deleted after the order was placed.
		for i := range order.Items {
			if order.Items[i].Product != nil {
				order.Items[i].ProductName = order.Items[i].Product.Name
			} else {
				order.Items[i].ProductName = unknownProductName
			}
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id/complete (admin)
//
// Sets the status unconditionally, so a repeated call is a no-op
// rewrite rather than an error.
func MarkOrderCompleteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}

		order.Status = models.OrderStatusCompleted
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order marked as complete"})
	}
}
