package postgres

import "testing"

func TestQuote(t *testing.T) {
	if got := Quote("User"); got != `"User"` {
		t.Errorf("Quote(User) = %s", got)
	}
	if got := Quote("transaction_id"); got != `"transaction_id"` {
		t.Errorf("Quote(transaction_id) = %s", got)
	}
}
