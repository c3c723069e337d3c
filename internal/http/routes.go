package httpapp

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes wires every resource under its prefix. Narrators have no
// delete route; removal happens through data maintenance, not the API.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.ListUsers)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)

		r.Post("/{id}/subscriptions", h.AddUserSubscription)
		r.Get("/{id}/subscriptions", h.ListUserSubscriptions)
		r.Delete("/{id}/subscriptions/{subscriptionID}", h.RemoveUserSubscription)
	})

	r.Route("/subscriptions", func(r chi.Router) {
		r.Post("/", h.CreateSubscription)
		r.Get("/", h.ListSubscriptions)
		r.Get("/{id}", h.GetSubscription)
		r.Put("/{id}", h.UpdateSubscription)
		r.Delete("/{id}", h.DeleteSubscription)
	})

	r.Route("/authors", func(r chi.Router) {
		r.Post("/", h.CreateAuthor)
		r.Get("/", h.ListAuthors)
		r.Get("/{id}", h.GetAuthor)
		r.Put("/{id}", h.UpdateAuthor)
		r.Delete("/{id}", h.DeleteAuthor)
	})

	r.Route("/narrators", func(r chi.Router) {
		r.Post("/", h.CreateNarrator)
		r.Get("/", h.ListNarrators)
		r.Get("/{id}", h.GetNarrator)
		r.Put("/{id}", h.UpdateNarrator)
	})

	r.Route("/audiobooks", func(r chi.Router) {
		r.Post("/", h.CreateAudiobook)
		r.Get("/", h.ListAudiobooks)
		r.Get("/{id}", h.GetAudiobook)
		r.Put("/{id}", h.UpdateAudiobook)
		r.Delete("/{id}", h.DeleteAudiobook)

		r.Get("/{id}/chapters", h.ListAudiobookChapters)
		r.Post("/{id}/categories", h.AddAudiobookCategory)
		r.Get("/{id}/categories", h.ListAudiobookCategories)
		r.Delete("/{id}/categories/{categoryID}", h.RemoveAudiobookCategory)
	})

	r.Route("/chapters", func(r chi.Router) {
		r.Post("/", h.CreateChapter)
		r.Get("/", h.ListChapters)
		r.Get("/{id}", h.GetChapter)
		r.Put("/{id}", h.UpdateChapter)
		r.Delete("/{id}", h.DeleteChapter)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Post("/", h.CreateCategory)
		r.Get("/", h.ListCategories)
		r.Get("/{id}", h.GetCategory)
		r.Put("/{id}", h.UpdateCategory)
		r.Delete("/{id}", h.DeleteCategory)

		r.Get("/{id}/audiobooks", h.ListCategoryAudiobooks)
	})

	r.Route("/listening_histories", func(r chi.Router) {
		r.Post("/", h.CreateListeningHistory)
		r.Get("/", h.ListListeningHistories)
		r.Get("/{id}", h.GetListeningHistory)
		r.Put("/{id}", h.UpdateListeningHistory)
		r.Delete("/{id}", h.DeleteListeningHistory)
	})

	r.Route("/bookmarks", func(r chi.Router) {
		r.Post("/", h.CreateBookmark)
		r.Get("/", h.ListBookmarks)
		r.Get("/{id}", h.GetBookmark)
		r.Put("/{id}", h.UpdateBookmark)
		r.Delete("/{id}", h.DeleteBookmark)
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", h.CreateReview)
		r.Get("/", h.ListReviews)
		r.Get("/{id}", h.GetReview)
		r.Put("/{id}", h.UpdateReview)
		r.Delete("/{id}", h.DeleteReview)
	})

	r.Route("/ratings", func(r chi.Router) {
		r.Post("/", h.CreateRating)
		r.Get("/", h.ListRatings)
		r.Get("/{id}", h.GetRating)
		r.Put("/{id}", h.UpdateRating)
		r.Delete("/{id}", h.DeleteRating)
	})

	r.Route("/purchases", func(r chi.Router) {
		r.Post("/", h.CreatePurchase)
		r.Get("/", h.ListPurchases)
		r.Get("/{id}", h.GetPurchase)
		r.Put("/{id}", h.UpdatePurchase)
		r.Delete("/{id}", h.DeletePurchase)
	})
}
