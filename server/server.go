package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/handlers"
	"github.com/ray-remotestate/backoffice/metrics"
	"github.com/ray-remotestate/backoffice/middlewares"
	"github.com/ray-remotestate/backoffice/models"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes(db *database.DB) *Server {
	h := handlers.New(db)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	router.HandleFunc("/login", h.Login).Methods("POST")
	router.HandleFunc("/refresh", h.RefreshToken).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.AuthMiddleware)
	api.HandleFunc("/logout", h.Logout).Methods("POST")

	// catalog
	api.HandleFunc("/categories", h.ListCategories).Methods("GET")
	api.HandleFunc("/categories/tree", h.CategoryTree).Methods("GET")
	api.HandleFunc("/categories", h.CreateCategory).Methods("POST")
	api.HandleFunc("/categories/{id}", h.GetCategory).Methods("GET")
	api.HandleFunc("/categories/{id}", h.UpdateCategory).Methods("PUT")
	api.HandleFunc("/categories/{id}", h.DeleteCategory).Methods("DELETE")

	api.HandleFunc("/menus", h.ListMenuItems).Methods("GET")
	api.HandleFunc("/menus", h.CreateMenuItem).Methods("POST")
	api.HandleFunc("/menus/{id}", h.GetMenuItem).Methods("GET")
	api.HandleFunc("/menus/{id}", h.UpdateMenuItem).Methods("PUT")
	api.HandleFunc("/menus/{id}", h.DeleteMenuItem).Methods("DELETE")

	// menu composition
	api.HandleFunc("/menus/{id}/addons", h.ListMenuItemAddons).Methods("GET")
	api.HandleFunc("/menus/{id}/addons/available", h.AvailableMenuItemAddons).Methods("GET")
	api.HandleFunc("/menus/{id}/addons", h.LinkMenuItemAddon).Methods("POST")
	api.HandleFunc("/menus/{id}/addons/{addonLinkID}", h.UpdateMenuItemAddon).Methods("PATCH")
	api.HandleFunc("/menus/{id}/addons/{addonID}", h.UnlinkMenuItemAddon).Methods("DELETE")

	api.HandleFunc("/menus/{id}/option-groups", h.ListMenuItemOptionGroups).Methods("GET")
	api.HandleFunc("/menus/{id}/option-groups/available", h.AvailableMenuItemOptionGroups).Methods("GET")
	api.HandleFunc("/menus/{id}/option-groups", h.LinkMenuItemOptionGroup).Methods("POST")
	api.HandleFunc("/menus/{id}/option-groups/{groupID}", h.UnlinkMenuItemOptionGroup).Methods("DELETE")

	api.HandleFunc("/addons", h.ListAddons).Methods("GET")
	api.HandleFunc("/addons", h.CreateAddon).Methods("POST")
	api.HandleFunc("/addons/{id}", h.GetAddon).Methods("GET")
	api.HandleFunc("/addons/{id}", h.UpdateAddon).Methods("PUT")
	api.HandleFunc("/addons/{id}", h.DeleteAddon).Methods("DELETE")

	api.HandleFunc("/menu-options", h.ListMenuOptions).Methods("GET")
	api.HandleFunc("/menu-options", h.CreateMenuOption).Methods("POST")
	api.HandleFunc("/menu-options/{id}", h.GetMenuOption).Methods("GET")
	api.HandleFunc("/menu-options/{id}", h.UpdateMenuOption).Methods("PUT")
	api.HandleFunc("/menu-options/{id}", h.DeleteMenuOption).Methods("DELETE")

	api.HandleFunc("/option-groups", h.ListOptionGroups).Methods("GET")
	api.HandleFunc("/option-groups", h.CreateOptionGroup).Methods("POST")
	api.HandleFunc("/option-groups/{id}", h.GetOptionGroup).Methods("GET")
	api.HandleFunc("/option-groups/{id}", h.UpdateOptionGroup).Methods("PUT")
	api.HandleFunc("/option-groups/{id}", h.DeleteOptionGroup).Methods("DELETE")
	api.HandleFunc("/option-groups/{id}/options", h.ListOptionGroupOptions).Methods("GET")
	api.HandleFunc("/option-groups/{id}/options", h.SetOptionGroupOptions).Methods("PUT")

	// orders and fulfilment
	api.HandleFunc("/orders", h.ListOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", h.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{id}/status", h.UpdateOrderStatus).Methods("PATCH")
	api.HandleFunc("/orders/{id}/payment-status", h.UpdateOrderPaymentStatus).Methods("PATCH")

	api.HandleFunc("/drivers", h.ListDrivers).Methods("GET")
	api.HandleFunc("/drivers", h.CreateDriver).Methods("POST")
	api.HandleFunc("/drivers/{id}", h.GetDriver).Methods("GET")
	api.HandleFunc("/drivers/{id}", h.UpdateDriver).Methods("PUT")
	api.HandleFunc("/drivers/{id}/active", h.SetDriverActive).Methods("PATCH")
	api.HandleFunc("/drivers/{id}", h.DeleteDriver).Methods("DELETE")

	api.HandleFunc("/deliveries", h.ListDeliveries).Methods("GET")
	api.HandleFunc("/deliveries/{id}/status", h.UpdateDeliveryStatus).Methods("PATCH")
	api.HandleFunc("/deliveries/{id}/assign", h.AssignDelivery).Methods("PATCH")

	// billing
	api.HandleFunc("/invoices", h.ListInvoices).Methods("GET")
	api.HandleFunc("/invoices", h.CreateInvoice).Methods("POST")
	api.HandleFunc("/invoices/{id}", h.GetInvoice).Methods("GET")
	api.HandleFunc("/invoices/{id}", h.UpdateInvoice).Methods("PUT")

	api.HandleFunc("/payments", h.ListPayments).Methods("GET")
	api.HandleFunc("/payments", h.CreatePayment).Methods("POST")
	api.HandleFunc("/payments/{id}", h.GetPayment).Methods("GET")

	// customer signals
	api.HandleFunc("/order-feedback", h.ListOrderFeedback).Methods("GET")
	api.HandleFunc("/order-feedback", h.CreateOrderFeedback).Methods("POST")
	api.HandleFunc("/order-feedback/{id}", h.GetOrderFeedback).Methods("GET")
	api.HandleFunc("/order-feedback/{id}", h.DeleteOrderFeedback).Methods("DELETE")

	api.HandleFunc("/rewards", h.ListRewards).Methods("GET")
	api.HandleFunc("/rewards/user/{userID}", h.GetRewardByUser).Methods("GET")
	api.HandleFunc("/rewards/{id}/adjust", h.AdjustReward).Methods("POST")

	// admin only
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.RoleBasedMiddleware(models.RoleAdmin))
	admin.HandleFunc("/subadmins", h.CreateSubAdmin).Methods("POST")
	admin.HandleFunc("/subadmins", h.ListSubAdmins).Methods("GET")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	handler := cors.AllowAll().Handler(metrics.Instrument(svr.Router))

	svr.server = &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
