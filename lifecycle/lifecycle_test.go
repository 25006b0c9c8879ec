package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "正常标题", title: "Hello", wantErr: nil},
		{name: "空标题", title: "", wantErr: myErrors.ErrTitleRequired},
		{name: "纯空白标题", title: "   \t ", wantErr: myErrors.ErrTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTitle(%q) = %v, want %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestApplyCreateDefaults(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("缺省状态与分类", func(t *testing.T) {
		post := &entities.BlogPost{Title: "t", Slug: "t"}
		if err := ApplyCreateDefaults(post, now); err != nil {
			t.Fatalf("ApplyCreateDefaults 返回错误: %v", err)
		}
		if post.Status != enums.PostStatusDraft {
			t.Errorf("Status = %q, want %q", post.Status, enums.PostStatusDraft)
		}
		if post.Category != DefaultCategory {
			t.Errorf("Category = %q, want %q", post.Category, DefaultCategory)
		}
		if post.PublishedAt != nil {
			t.Errorf("草稿不应落章发布时间, got %v", post.PublishedAt)
		}
	})

	t.Run("创建即发布落章发布时间", func(t *testing.T) {
		post := &entities.BlogPost{Title: "t", Slug: "t", Status: enums.PostStatusPublished}
		if err := ApplyCreateDefaults(post, now); err != nil {
			t.Fatalf("ApplyCreateDefaults 返回错误: %v", err)
		}
		if post.PublishedAt == nil || !post.PublishedAt.Equal(now) {
			t.Errorf("PublishedAt = %v, want %v", post.PublishedAt, now)
		}
	})

	t.Run("显式发布时间不被覆盖", func(t *testing.T) {
		explicit := now.Add(-24 * time.Hour)
		post := &entities.BlogPost{Title: "t", Slug: "t", Status: enums.PostStatusPublished, PublishedAt: &explicit}
		if err := ApplyCreateDefaults(post, now); err != nil {
			t.Fatalf("ApplyCreateDefaults 返回错误: %v", err)
		}
		if !post.PublishedAt.Equal(explicit) {
			t.Errorf("PublishedAt = %v, want %v", post.PublishedAt, explicit)
		}
	})

	t.Run("空 slug 被拒绝", func(t *testing.T) {
		post := &entities.BlogPost{Title: "!!!", Slug: ""}
		if err := ApplyCreateDefaults(post, now); !errors.Is(err, myErrors.ErrSlugEmpty) {
			t.Errorf("err = %v, want %v", err, myErrors.ErrSlugEmpty)
		}
	})

	t.Run("空标题被拒绝", func(t *testing.T) {
		post := &entities.BlogPost{Title: " ", Slug: "s"}
		if err := ApplyCreateDefaults(post, now); !errors.Is(err, myErrors.ErrTitleRequired) {
			t.Errorf("err = %v, want %v", err, myErrors.ErrTitleRequired)
		}
	})

	t.Run("非法状态被拒绝", func(t *testing.T) {
		post := &entities.BlogPost{Title: "t", Slug: "t", Status: enums.PostStatus("archived")}
		if err := ApplyCreateDefaults(post, now); !errors.Is(err, myErrors.ErrInvalidStatus) {
			t.Errorf("err = %v, want %v", err, myErrors.ErrInvalidStatus)
		}
	})
}

func TestStampPublishedAt(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	published := enums.PostStatusPublished
	draft := enums.PostStatusDraft
	explicit := now.Add(-time.Hour)

	tests := []struct {
		name        string
		status      *enums.PostStatus
		explicitAt  *time.Time
		wantStamped bool
	}{
		{name: "进入 published 且无显式时间时落章", status: &published, explicitAt: nil, wantStamped: true},
		{name: "显式携带发布时间时不落章", status: &published, explicitAt: &explicit, wantStamped: false},
		{name: "状态回到 draft 不触碰发布时间", status: &draft, explicitAt: nil, wantStamped: false},
		{name: "补丁不含状态时不落章", status: nil, explicitAt: nil, wantStamped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := map[string]interface{}{}
			StampPublishedAt(updates, tt.status, tt.explicitAt, now)

			stamped, ok := updates["published_at"]
			if ok != tt.wantStamped {
				t.Fatalf("落章与否 = %v, want %v", ok, tt.wantStamped)
			}
			if tt.wantStamped && stamped != now {
				t.Errorf("published_at = %v, want %v", stamped, now)
			}
		})
	}
}
