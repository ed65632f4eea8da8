package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/models"
	"github.com/trhieu-dev/tablebooking/services"
	"github.com/trhieu-dev/tablebooking/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Booking *services.BookingService
	Status  *services.OrderStatusService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:      db,
		Booking: services.NewBookingService(db),
		Status:  services.NewOrderStatusService(db),
	}
}

// CreateOrder -> user membuat booking (status='pending')
func (oc *OrderController) CreateOrder(c *gin.Context) {
	actor := currentActor(c)

	var req struct {
		TableID       uint   `json:"table_id" binding:"required"`
		ArriveDate    string `json:"arrive_date" binding:"required"`
		ArriveTime    string `json:"arrive_time" binding:"required"`
		PartySize     int    `json:"party_size" binding:"required,gt=0"`
		CustomerName  string `json:"customer_name"`
		CustomerPhone string `json:"customer_phone"`
		Notes         string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Nama/telepon kosong diambil dari profil user
	if req.CustomerName == "" || req.CustomerPhone == "" {
		var user models.User
		if err := oc.DB.First(&user, actor.UserID).Error; err == nil {
			if req.CustomerName == "" {
				req.CustomerName = user.FullName
			}
			if req.CustomerPhone == "" {
				req.CustomerPhone = user.Phone
			}
		}
	}

	order, err := oc.Booking.CreateBooking(actor.UserID, services.CreateBookingInput{
		TableID:       req.TableID,
		ArriveDate:    req.ArriveDate,
		ArriveTime:    req.ArriveTime,
		PartySize:     req.PartySize,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Booking created", order)
}

// GetAllOrders -> user melihat riwayat sendiri, admin melihat semua.
// Filter opsional untuk admin: ?filter=pending | upcoming
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	actor := currentActor(c)

	query := oc.DB.Preload("Table").Order("created_at desc")
	if !actor.IsAdmin() {
		query = query.Where("user_id = ?", actor.UserID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filter := c.Query("filter")
	if actor.IsAdmin() && filter != "" {
		now := time.Now()
		filtered := orders[:0]
		for _, order := range orders {
			status := models.NormalizeOrderStatus(order.Status)
			switch filter {
			case "pending":
				if status == models.OrderPending {
					filtered = append(filtered, order)
				}
			case "upcoming":
				arrival, err := utils.ParseArrival(order.ArriveDate, order.ArriveTime)
				if err == nil && status == models.OrderApproved && !arrival.Before(now) {
					filtered = append(filtered, order)
				}
			}
		}
		orders = filtered
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail 1 order; user biasa hanya boleh melihat miliknya
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	actor := currentActor(c)
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.Preload("Table").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !actor.IsAdmin() && order.UserID != actor.UserID {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// ApproveOrder -> admin menyetujui booking, meja jadi held
func (oc *OrderController) ApproveOrder(c *gin.Context) {
	oc.runTransition(c, oc.Status.Approve, "Order approved")
}

// DeclineOrder -> admin menolak booking
func (oc *OrderController) DeclineOrder(c *gin.Context) {
	oc.runTransition(c, oc.Status.Decline, "Order declined")
}

// CheckInOrder -> tamu datang, meja jadi occupied
func (oc *OrderController) CheckInOrder(c *gin.Context) {
	oc.runTransition(c, oc.Status.CheckIn, "Order checked in")
}

// CompleteOrder -> tamu selesai, meja dilepas
func (oc *OrderController) CompleteOrder(c *gin.Context) {
	oc.runTransition(c, oc.Status.Complete, "Order completed")
}

// CancelOrder -> pembatalan oleh pemilik order
func (oc *OrderController) CancelOrder(c *gin.Context) {
	actor := currentActor(c)
	id, _ := strconv.Atoi(c.Param("order_id"))

	order, err := oc.Status.Cancel(uint(id), actor, time.Now())
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking cancelled", order)
}

func (oc *OrderController) runTransition(
	c *gin.Context,
	fn func(uint, services.Actor) (*models.Order, error),
	message string,
) {
	actor := currentActor(c)
	id, _ := strconv.Atoi(c.Param("order_id"))

	order, err := fn(uint(id), actor)
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, message, order)
}

// statusForError memetakan taksonomi error core ke kode HTTP
func statusForError(err error) int {
	switch {
	case errors.Is(err, utils.ErrInvalidSlot):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrTooLateToCancel):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrPartyTooLarge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNoPermission):
		return http.StatusForbidden
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
