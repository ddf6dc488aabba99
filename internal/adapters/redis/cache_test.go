package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "eatsandthinks/internal/adapters/redis"
	"eatsandthinks/internal/sections"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test:")
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_MissSetHitDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	var got sections.Section
	ok, err := c.Get(ctx, "home:featured", &got)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	in := sections.Assemble(sections.NameHiddenGems, nil, true)
	if err := c.Set(ctx, "home:hidden_gems", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("test:home:hidden_gems") {
		t.Fatalf("expected prefixed key in redis")
	}

	ok, err = c.Get(ctx, "home:hidden_gems", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Status != sections.StatusEmpty || got.Name != sections.NameHiddenGems {
		t.Fatalf("unexpected cached section: %+v", got)
	}

	if err := c.Del(ctx, "home:hidden_gems"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "home:hidden_gems", &got); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", map[string]int{"a": 1}, 10); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(11 * time.Second)

	var v map[string]int
	if ok, _ := c.Get(ctx, "k", &v); ok {
		t.Fatalf("expected key to expire")
	}
}

func TestCache_CorruptValue(t *testing.T) {
	c, mr := newCache(t)
	if err := mr.Set("test:bad", "{not json"); err != nil {
		t.Fatal(err)
	}
	var v map[string]any
	ok, err := c.Get(context.Background(), "bad", &v)
	if ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestCache_Ping(t *testing.T) {
	c, mr := newCache(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	mr.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error after server close")
	}
}
