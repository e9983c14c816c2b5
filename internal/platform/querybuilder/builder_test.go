package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("payload").
		From("tournament_records").
		Where(Eq("storage_key", "school-football-tournament-v1")).
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT payload FROM tournament_records WHERE storage_key = $1 LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "school-football-tournament-v1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("payload").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsertBuilder_Upsert(t *testing.T) {
	query, args, err := InsertInto("tournament_records").
		Columns("storage_key", "payload").
		Values("k1", []byte(`{}`)).
		OnConflictUpdate([]string{"storage_key"}, "payload").
		ToSQL()
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO tournament_records (storage_key, payload) VALUES ($1, $2) ON CONFLICT (storage_key) DO UPDATE SET payload = EXCLUDED.payload"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "k1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	_, _, err := InsertInto("tournament_records").
		Columns("storage_key", "payload").
		Values("k1").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for mismatched values")
	}
}
