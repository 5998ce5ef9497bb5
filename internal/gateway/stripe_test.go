package gateway

import "testing"

func TestParseWebhook(t *testing.T) {
	payload := []byte(`{
		"type": "payment_intent.succeeded",
		"data": {
			"object": {
				"id": "pi_123",
				"amount": 2500,
				"metadata": {"order_id": "7", "seller_id": "3"}
			}
		}
	}`)

	ev, err := ParseWebhook(payload)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if ev.Type != EventPaymentSucceeded {
		t.Fatalf("type=%q", ev.Type)
	}
	if ev.TransactionID != "pi_123" {
		t.Fatalf("transaction id=%q", ev.TransactionID)
	}
	if ev.AmountCents != 2500 {
		t.Fatalf("amount=%d", ev.AmountCents)
	}
	if ev.Metadata["order_id"] != "7" {
		t.Fatalf("metadata=%v", ev.Metadata)
	}
}

func TestParseWebhookEmptyData(t *testing.T) {
	ev, err := ParseWebhook([]byte(`{"type": "charge.refunded"}`))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if ev.Type != "charge.refunded" {
		t.Fatalf("type=%q", ev.Type)
	}
	if ev.Metadata == nil {
		t.Fatal("metadata should be initialized")
	}
}

func TestParseWebhookBadPayload(t *testing.T) {
	if _, err := ParseWebhook([]byte("not json")); err == nil {
		t.Fatal("want error")
	}
}
