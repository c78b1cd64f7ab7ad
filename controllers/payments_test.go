package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"lumoxcloud/models"
	"lumoxcloud/tools"
)

// swapPaymentTools replaces the Stripe and QR integrations for the test
// and records what they were called with.
type paymentCalls struct {
	checkoutURL string
	qrURL       string
	qrPath      string
	stripeErr   error
}

func swapPaymentTools(t *testing.T, calls *paymentCalls) {
	t.Helper()
	origCreate := tools.CreateCheckoutSession
	origWrite := tools.WriteQRCode

	tools.CreateCheckoutSession = func(userID int64, plan *models.Plan, baseURL string) (string, error) {
		if calls.stripeErr != nil {
			return "", calls.stripeErr
		}
		calls.checkoutURL = fmt.Sprintf("https://checkout.stripe.test/u%d/p%d", userID, plan.ID)
		return calls.checkoutURL, nil
	}
	tools.WriteQRCode = func(url, path string) error {
		calls.qrURL = url
		calls.qrPath = path
		return nil
	}

	t.Cleanup(func() {
		tools.CreateCheckoutSession = origCreate
		tools.WriteQRCode = origWrite
	})
}

func TestPurchaseUnknownPlan(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(t, db)
	user := createUser(t, db, "alice", false)
	calls := &paymentCalls{}
	swapPaymentTools(t, calls)

	cookies := loginAs(t, r, user)
	w := doRequest(r, http.MethodGet, "/purchase/999", cookies)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var count int
	db.Model(&models.PlanPurchase{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no purchase rows, got %d", count)
	}
	if calls.checkoutURL != "" {
		t.Fatal("no checkout session should be created for a missing plan")
	}
}

func TestPurchaseCreatesPendingPurchase(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(t, db)
	user := createUser(t, db, "alice", false)
	plan := createPlan(t, db, "Starter VPS", 5.00)
	calls := &paymentCalls{}
	swapPaymentTools(t, calls)

	cookies := loginAs(t, r, user)
	w := doRequest(r, http.MethodGet, fmt.Sprintf("/purchase/%d", plan.ID), cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var purchases []models.PlanPurchase
	db.Find(&purchases)
	if len(purchases) != 1 {
		t.Fatalf("expected 1 purchase row, got %d", len(purchases))
	}
	p := purchases[0]
	if p.UserID != user.ID || p.PlanID != plan.ID {
		t.Fatalf("purchase keyed wrong: %+v", p)
	}
	if p.Status != models.PURCHASE_STATUS_PENDING {
		t.Fatalf("expected pending status, got %q", p.Status)
	}

	// the page shows the same URL that went into the QR artifact
	if calls.qrURL != calls.checkoutURL {
		t.Fatalf("qr encodes %q but checkout is %q", calls.qrURL, calls.checkoutURL)
	}
	if !strings.Contains(w.Body.String(), calls.checkoutURL) {
		t.Fatal("response body missing checkout url")
	}
	wantPath := tools.QRCodePath("static/qr", user.ID, plan.ID)
	if calls.qrPath != wantPath {
		t.Fatalf("expected qr path %q, got %q", wantPath, calls.qrPath)
	}
}

func TestPurchaseStripeFailure(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(t, db)
	user := createUser(t, db, "alice", false)
	plan := createPlan(t, db, "Starter VPS", 5.00)
	calls := &paymentCalls{stripeErr: fmt.Errorf("provider down")}
	swapPaymentTools(t, calls)

	cookies := loginAs(t, r, user)
	w := doRequest(r, http.MethodGet, fmt.Sprintf("/purchase/%d", plan.ID), cookies)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var count int
	db.Model(&models.PlanPurchase{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no purchase rows after provider failure, got %d", count)
	}
}

func TestPaymentSuccessCompletesPending(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(t, db)
	user := createUser(t, db, "alice", false)
	plan := createPlan(t, db, "Starter VPS", 5.00)

	purchase := models.PlanPurchase{UserID: user.ID, PlanID: plan.ID, Status: models.PURCHASE_STATUS_PENDING}
	if err := db.Create(&purchase).Error; err != nil {
		t.Fatalf("failed to seed purchase: %v", err)
	}

	target := fmt.Sprintf("/payment_success?user_id=%d&plan_id=%d", user.ID, plan.ID)
	w := doRequest(r, http.MethodGet, target, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}

	var got models.PlanPurchase
	db.First(&got, purchase.ID)
	if got.Status != models.PURCHASE_STATUS_COMPLETED {
		t.Fatalf("expected completed, got %q", got.Status)
	}

	// second call finds no pending row and changes nothing
	w = doRequest(r, http.MethodGet, target, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 on repeat call, got %d", w.Code)
	}
	db.First(&got, purchase.ID)
	if got.Status != models.PURCHASE_STATUS_COMPLETED {
		t.Fatalf("repeat call changed status to %q", got.Status)
	}
}

func TestPaymentSuccessUnknownKeysRedirectsSilently(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(t, db)

	w := doRequest(r, http.MethodGet, "/payment_success?user_id=42&plan_id=7", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}

	var count int
	db.Model(&models.PlanPurchase{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no purchase rows, got %d", count)
	}
}

func TestPaymentSuccessMalformedParamsRedirect(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(t, db)

	w := doRequest(r, http.MethodGet, "/payment_success?user_id=abc&plan_id=", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
}
