package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/skillotech/ambassador-api/internal/config"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/network/handlers"
	"github.com/skillotech/ambassador-api/internal/network/middleware"
	"github.com/skillotech/ambassador-api/internal/services"
	"github.com/skillotech/ambassador-api/internal/storage"
)

type Router struct {
	Config      config.Config
	Indentity   services.IdentityService
	Admin       services.AdminService
	Ledgers     services.LedgerService
	Withdrawals services.WithdrawalService
	Referrals   services.ReferralService
	Templates   services.TemplateService
}

func NewRouter(config config.Config, storage storage.IStorage) *Router {
	return &Router{
		Config:      config,
		Indentity:   services.NewIdentity(config, storage),
		Admin:       services.NewAdmin(config, storage),
		Ledgers:     services.NewLedger(storage),
		Withdrawals: services.NewWithdrawal(storage),
		Referrals:   services.NewReferrals(storage),
		Templates:   services.NewTemplates(storage),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Indentity.GetTokenAuth()
	ambassadorOnly := middleware.RequireRole(models.RoleAmbassador)
	adminOnly := middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)

		r.Route("/user", func(r chi.Router) {
			r.Post("/send-otp", handlers.SendOtpHandler(router.Indentity))
			r.Post("/verify-otp", handlers.VerifyOtpHandler(router.Indentity))
			r.Post("/register", handlers.RegisterAmbassadorHandler(router.Indentity))
			r.Post("/login", handlers.AuthenticateAmbassadorHandler(router.Indentity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Use(ambassadorOnly)
				r.Get("/profile", handlers.GetProfileHandler(router.Indentity))
				r.Put("/profile", handlers.UpdateProfileHandler(router.Indentity))
				r.Put("/password", handlers.ChangePasswordHandler(router.Indentity))
				r.Post("/links", handlers.SubmitLinksHandler(router.Indentity))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/register", handlers.RegisterAdminHandler(router.Admin))
			r.Post("/login", handlers.AuthenticateAdminHandler(router.Admin))
			r.Post("/forgot-password", handlers.ForgotPasswordHandler(router.Admin))
			r.Post("/reset-password", handlers.ResetPasswordHandler(router.Admin))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Use(adminOnly)
				r.Put("/password", handlers.ChangeAdminPasswordHandler(router.Admin))
				r.Get("/ambassadors", handlers.GetAmbassadorsHandler(router.Admin))
				r.Get("/ambassadors/{id}", handlers.GetAmbassadorHandler(router.Admin))
				r.Post("/ambassadors/{id}/approve", handlers.ApproveAmbassadorHandler(router.Admin))
				r.Post("/ambassadors/{id}/reject", handlers.RejectAmbassadorHandler(router.Admin))
				r.Post("/ambassadors/{id}/form-link", handlers.AssignFormLinkHandler(router.Admin))
				r.Post("/ambassadors/{id}/activities-link", handlers.AssignActivitiesLinkHandler(router.Admin))
			})
		})

		r.Route("/coupons", func(r chi.Router) {
			router.handleLedgerRoutes(r, models.KindCoupon)
			// отклонение доступно только для купонов
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Use(adminOnly)
				r.Post("/withdraw/{id}/reject", handlers.RejectWithdrawalHandler(router.Withdrawals, models.KindCoupon))
			})
		})
		r.Route("/rewards", func(r chi.Router) {
			router.handleLedgerRoutes(r, models.KindReward)
		})

		r.Route("/referrals", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Group(func(r chi.Router) {
				r.Use(ambassadorOnly)
				r.Post("/", handlers.SubmitReferralHandler(router.Referrals))
				r.Get("/my", handlers.GetOwnReferralsHandler(router.Referrals))
			})
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/", handlers.GetReferralsHandler(router.Referrals))
				r.Get("/{id}", handlers.GetReferralHandler(router.Referrals))
				r.Post("/{id}/review", handlers.ReviewReferralHandler(router.Referrals))
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Get("/", handlers.GetTemplatesHandler(router.Templates))
			r.Get("/{id}", handlers.GetTemplateHandler(router.Templates))
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/", handlers.AddTemplateHandler(router.Templates))
				r.Put("/{id}", handlers.UpdateTemplateHandler(router.Templates))
				r.Delete("/{id}", handlers.DeleteTemplateHandler(router.Templates))
			})
		})
	})
	return r
}

// handleLedgerRoutes - общие маршруты копилок, одинаковые для купонов
// и вознаграждений
func (router *Router) handleLedgerRoutes(r chi.Router, kind models.LedgerKind) {
	ja := router.Indentity.GetTokenAuth()
	ambassadorOnly := middleware.RequireRole(models.RoleAmbassador)
	adminOnly := middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin)

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(jwtauth.Authenticator(ja))
		r.Use(ambassadorOnly)
		r.Get("/me", handlers.GetOwnLedgerHandler(router.Ledgers, kind))
		r.Post("/withdraw", handlers.WithdrawHandler(router.Withdrawals, kind))
	})
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(jwtauth.Authenticator(ja))
		r.Use(adminOnly)
		r.Post("/", handlers.CreditHandler(router.Ledgers, kind))
		r.Get("/", handlers.GetLedgersHandler(router.Ledgers, kind))
		r.Get("/{id}", handlers.GetLedgerHandler(router.Ledgers, kind))
		r.Put("/{id}", handlers.UpdateLedgerHandler(router.Ledgers, kind))
		r.Get("/withdraw/pending", handlers.GetPendingWithdrawalsHandler(router.Withdrawals, kind))
		r.Post("/withdraw/{id}/approve", handlers.ApproveWithdrawalHandler(router.Withdrawals, kind))
	})
}
