package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/trhieu-dev/tablebooking/models"
	"github.com/trhieu-dev/tablebooking/services"
	"github.com/trhieu-dev/tablebooking/utils"
)

type TableController struct {
	DB           *gorm.DB
	Availability *services.AvailabilityService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{
		DB:           db,
		Availability: services.NewAvailabilityService(db),
	}
}

// GetFreeTables -> id meja yang masih kosong untuk {area, date, time}
func (tc *TableController) GetFreeTables(c *gin.Context) {
	free, err := tc.Availability.ResolveFreeTables(
		c.Query("area"), c.Query("date"), c.Query("time"))
	if err != nil {
		utils.RespondError(c, statusForError(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Free tables", gin.H{
		"table_ids": free,
	})
}

// GetTables -> daftar meja per area dengan status hasil proyeksi, dipakai
// oleh view admin maupun view booking user
func (tc *TableController) GetTables(c *gin.Context) {
	area := c.Query("area")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	if !utils.IsValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidSlot)
		return
	}

	query := tc.DB.Order("name asc")
	if area != "" {
		query = query.Where("area = ?", area)
	}

	var tables []models.Table
	if err := query.Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var orders []models.Order
	if err := tc.DB.Where("arrive_date = ?", date).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	type tableView struct {
		models.Table
		DisplayStatus string `json:"display_status"`
	}

	views := make([]tableView, 0, len(tables))
	for _, table := range tables {
		views = append(views, tableView{
			Table:         table,
			DisplayStatus: services.ProjectTableStatus(table, orders, now),
		})
	}

	utils.RespondJSON(c, http.StatusOK, "List of tables", views)
}

// CreateTable -> admin menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	if !currentActor(c).IsAdmin() {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Area     string `json:"area" binding:"required"`
		Capacity int    `json:"capacity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.Table{
		Name:     req.Name,
		Area:     req.Area,
		Capacity: req.Capacity,
		Status:   models.TableAvailable,
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s area=%s (capacity=%d)",
		table.Name, table.Area, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTableStatus -> override manual oleh admin. Kembali ke available
// selalu membersihkan lease, sama seperti perilaku layar table management.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	if !currentActor(c).IsAdmin() {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	tableID := c.Param("table_id")
	var body struct {
		Status      string     `json:"status" binding:"required"`
		ActiveUntil *time.Time `json:"active_until"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	table.Status = models.NormalizeTableStatus(body.Status)
	if table.Status == models.TableAvailable {
		table.ActiveUntil = nil
	} else if body.ActiveUntil != nil {
		table.ActiveUntil = body.ActiveUntil
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d status changed to %s", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// DeleteTable -> admin menghapus meja
func (tc *TableController) DeleteTable(c *gin.Context) {
	if !currentActor(c).IsAdmin() {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	tableID := c.Param("table_id")
	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": table.ID,
	})
}

// GetDashboardStats -> ringkasan occupancy untuk dashboard admin
func (tc *TableController) GetDashboardStats(c *gin.Context) {
	if !currentActor(c).IsAdmin() {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if !utils.IsValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidSlot)
		return
	}

	var tables []models.Table
	if err := tc.DB.Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var orders []models.Order
	if err := tc.DB.Where("arrive_date = ?", date).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	counts := map[string]int{
		models.TableAvailable: 0,
		models.TableHeld:      0,
		models.TableOccupied:  0,
	}
	for _, table := range tables {
		counts[services.ProjectTableStatus(table, orders, now)]++
	}

	pending := 0
	for _, order := range orders {
		if models.NormalizeOrderStatus(order.Status) == models.OrderPending {
			pending++
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"available":      counts[models.TableAvailable],
		"held":           counts[models.TableHeld],
		"occupied":       counts[models.TableOccupied],
		"total":          len(tables),
		"pending_orders": pending,
	})
}
