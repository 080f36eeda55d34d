package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleCustomer))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))
	courierMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleDeliveryPerson))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/logout", authMiddleware.ThenFunc(app.userHandler.Logout))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.Me))
	mux.Post("/user/device", authMiddleware.ThenFunc(app.userHandler.RegisterDevice))
	mux.Post("/delivery_people", adminMiddleware.ThenFunc(app.userHandler.CreateDeliveryPerson))
	mux.Get("/delivery_people", adminMiddleware.ThenFunc(app.userHandler.GetDeliveryPeople))

	// Catalog
	mux.Get("/menu", standardMiddleware.ThenFunc(app.productHandler.GetMenu))
	mux.Get("/product/:id", standardMiddleware.ThenFunc(app.productHandler.GetProductByID))
	mux.Post("/product", adminMiddleware.ThenFunc(app.productHandler.CreateProduct))
	mux.Get("/products", adminMiddleware.ThenFunc(app.productHandler.GetAllProducts))
	mux.Put("/product/:id", adminMiddleware.ThenFunc(app.productHandler.UpdateProduct))
	mux.Del("/product/:id", adminMiddleware.ThenFunc(app.productHandler.DeleteProduct))
	mux.Post("/product/:id/image", adminMiddleware.ThenFunc(app.productHandler.UploadImage))
	mux.Post("/products/availability", adminMiddleware.ThenFunc(app.productHandler.SetAvailabilityBulk))

	// Categories
	mux.Get("/category", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/category/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByID))
	mux.Post("/category", adminMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Put("/category/:id", adminMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/category/:id", adminMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Cart
	mux.Get("/cart", authMiddleware.ThenFunc(app.cartHandler.GetCart))
	mux.Post("/cart/items", authMiddleware.ThenFunc(app.cartHandler.AddItem))
	mux.Put("/cart/items/:id", authMiddleware.ThenFunc(app.cartHandler.UpdateItem))
	mux.Del("/cart/items/:id", authMiddleware.ThenFunc(app.cartHandler.RemoveItem))
	mux.Del("/cart", authMiddleware.ThenFunc(app.cartHandler.ClearCart))

	// Delivery and checkout
	mux.Post("/delivery/check", standardMiddleware.ThenFunc(app.orderHandler.CheckDelivery))
	mux.Post("/checkout", authMiddleware.ThenFunc(app.orderHandler.Checkout))
	mux.Post("/payment/verify", authMiddleware.ThenFunc(app.orderHandler.VerifyPayment))

	// Orders
	mux.Get("/orders/my", authMiddleware.ThenFunc(app.orderHandler.GetMyOrders))
	mux.Get("/orders/assigned", courierMiddleware.ThenFunc(app.orderHandler.GetAssignedOrders))
	mux.Get("/order/:id", authMiddleware.ThenFunc(app.orderHandler.GetOrderByID))
	mux.Post("/order/:id/cancel", authMiddleware.ThenFunc(app.orderHandler.CancelOrder))
	mux.Get("/orders", adminMiddleware.ThenFunc(app.orderHandler.GetAllOrders))
	mux.Put("/order/:id/status", adminMiddleware.ThenFunc(app.orderHandler.UpdateStatus))
	mux.Post("/order/:id/assign", adminMiddleware.ThenFunc(app.orderHandler.AssignOrder))
	mux.Post("/order/:id/delivered", courierMiddleware.ThenFunc(app.orderHandler.MarkDelivered))

	// Reviews
	mux.Post("/review", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/reviews/product/:id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByProduct))
	mux.Get("/reviews/top", standardMiddleware.ThenFunc(app.reviewHandler.GetTopReviews))
	mux.Del("/review/:id", adminMiddleware.ThenFunc(app.reviewHandler.DeleteReview))

	// Live order feed
	mux.Get("/ws/orders", authMiddleware.ThenFunc(app.OrderFeedHandler))

	return standardMiddleware.Then(mux)
}
