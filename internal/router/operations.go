package router

// The logical operation set. Reads and guarded lifecycle transitions are
// fallback-safe: the state machine's check-then-set rejects a duplicate
// re-execution. Settlement and request/application creation are not, since
// replaying them on the simulated path could report a side effect the real
// backend never performed (the registration rule from the routing policy).
var (
	OpGetApplication      = Operation{Name: "application.get", FallbackSafe: true}
	OpListApplications    = Operation{Name: "application.list", FallbackSafe: true}
	OpCreateApplication   = Operation{Name: "application.create", Mutating: true}
	OpSubmitApplication   = Operation{Name: "application.submit", Mutating: true, FallbackSafe: true}
	OpStartReview         = Operation{Name: "application.start_review", Mutating: true, FallbackSafe: true}
	OpApproveApplication  = Operation{Name: "application.approve", Mutating: true}
	OpRejectApplication   = Operation{Name: "application.reject", Mutating: true, FallbackSafe: true}
	OpWithdrawApplication = Operation{Name: "application.withdraw", Mutating: true, FallbackSafe: true}

	OpDeactivatePartnership = Operation{Name: "partnership.deactivate", Mutating: true}
	OpReactivatePartnership = Operation{Name: "partnership.reactivate", Mutating: true, FallbackSafe: true}

	OpCreatePaymentRequest = Operation{Name: "payment.create_request", Mutating: true}
	OpSettle               = Operation{Name: "payment.settle", Mutating: true}
	OpMarkOverdue          = Operation{Name: "payment.mark_overdue", Mutating: true, FallbackSafe: true}
	OpCancelPaymentRequest = Operation{Name: "payment.cancel_request", Mutating: true, FallbackSafe: true}
	OpGetPaymentRequest    = Operation{Name: "payment.get_request", FallbackSafe: true}
	OpListPaymentRequests  = Operation{Name: "payment.list_requests", FallbackSafe: true}

	OpListNotifications    = Operation{Name: "notification.list", FallbackSafe: true}
	OpMarkNotificationRead = Operation{Name: "notification.mark_read", Mutating: true, FallbackSafe: true}
	OpDismissNotification  = Operation{Name: "notification.dismiss", Mutating: true, FallbackSafe: true}
)
