package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
)

type postListFixture struct {
	postSvc PostService
	listSvc PostListService
	repo    *fakePostRepo
}

func newPostListFixture(t *testing.T) *postListFixture {
	t.Helper()
	repo := newFakePostRepo()
	cache := newFakePostCache()
	logger := newTestLogger(t)
	postSvc := NewPostService(repo, cache, &fakeCOSClient{}, nil, logger)
	listSvc := NewPostListService(repo, logger)
	return &postListFixture{postSvc: postSvc, listSvc: listSvc, repo: repo}
}

// seedPost 通过服务层创建一篇文章并返回其 slug。
func (f *postListFixture) seedPost(t *testing.T, authorID, title, content, category string, status enums.PostStatus) string {
	t.Helper()
	req := &dto.CreatePostRequest{
		Title:    title,
		Content:  content,
		Category: &category,
		Status:   &status,
	}
	created, err := f.postSvc.CreatePost(context.Background(), authorID, req)
	if err != nil {
		t.Fatalf("seed 文章 %q 失败: %v", title, err)
	}
	return created.Slug
}

func TestListPublishedFiltersStatusAndOrders(t *testing.T) {
	f := newPostListFixture(t)
	ctx := context.Background()

	f.seedPost(t, "a1", "Oldest Published", "c", "general", enums.PostStatusPublished)
	time.Sleep(2 * time.Millisecond) // 保证发布时间可区分
	f.seedPost(t, "a1", "Newest Published", "c", "general", enums.PostStatusPublished)
	f.seedPost(t, "a1", "Hidden Draft", "c", "general", enums.PostStatusDraft)
	f.seedPost(t, "a1", "Hidden Scheduled", "c", "general", enums.PostStatusScheduled)

	result, err := f.listSvc.ListPublished(ctx, &dto.ListPublishedPostsRequest{})
	if err != nil {
		t.Fatalf("ListPublished 返回错误: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}
	if result.Posts[0].Title != "Newest Published" || result.Posts[1].Title != "Oldest Published" {
		t.Errorf("排序错误: got [%q, %q]", result.Posts[0].Title, result.Posts[1].Title)
	}
}

func TestListPublishedSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	f := newPostListFixture(t)
	ctx := context.Background()

	f.seedPost(t, "a1", "Kubernetes Deep Dive", "plain body", "general", enums.PostStatusPublished)
	f.seedPost(t, "a1", "Unrelated", "mentions KUBERNETES inside", "general", enums.PostStatusPublished)
	f.seedPost(t, "a1", "Also Unrelated", "nothing here", "general", enums.PostStatusPublished)

	result, err := f.listSvc.ListPublished(ctx, &dto.ListPublishedPostsRequest{Search: "kubernetes"})
	if err != nil {
		t.Fatalf("ListPublished 返回错误: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2 (标题命中 + 正文命中)", result.Total)
	}
}

func TestListPublishedCategoryFilter(t *testing.T) {
	f := newPostListFixture(t)
	ctx := context.Background()

	f.seedPost(t, "a1", "Design Post", "c", "design", enums.PostStatusPublished)
	f.seedPost(t, "a1", "Engineering Post", "c", "engineering", enums.PostStatusPublished)

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{name: "精确分类", category: "design", want: 1},
		{name: "哨兵值 all 不过滤", category: "all", want: 2},
		{name: "空值不过滤", category: "", want: 2},
		{name: "未知分类空结果", category: "nope", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.listSvc.ListPublished(ctx, &dto.ListPublishedPostsRequest{Category: tt.category})
			if err != nil {
				t.Fatalf("ListPublished 返回错误: %v", err)
			}
			if result.Total != tt.want {
				t.Errorf("Total = %d, want %d", result.Total, tt.want)
			}
		})
	}
}

func TestListMineIncludesAllStatusesForOwnerOnly(t *testing.T) {
	f := newPostListFixture(t)
	ctx := context.Background()

	f.seedPost(t, "owner", "My Draft", "c", "general", enums.PostStatusDraft)
	f.seedPost(t, "owner", "My Published", "c", "general", enums.PostStatusPublished)
	f.seedPost(t, "someone-else", "Not Mine", "c", "general", enums.PostStatusPublished)

	result, err := f.listSvc.ListMine(ctx, "owner")
	if err != nil {
		t.Fatalf("ListMine 返回错误: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}
	for _, post := range result.Posts {
		if post.AuthorID != "owner" {
			t.Errorf("列表混入他人文章: %q", post.Title)
		}
	}
}

func TestListMineRequiresIdentity(t *testing.T) {
	f := newPostListFixture(t)

	_, err := f.listSvc.ListMine(context.Background(), "")
	if !errors.Is(err, commonerrors.ErrUserNotLoggedIn) {
		t.Errorf("err = %v, want ErrUserNotLoggedIn", err)
	}
}

func TestListPublishedEmptyResultIsNotError(t *testing.T) {
	f := newPostListFixture(t)

	result, err := f.listSvc.ListPublished(context.Background(), &dto.ListPublishedPostsRequest{})
	if err != nil {
		t.Fatalf("空库查询不应报错: %v", err)
	}
	if result.Total != 0 || len(result.Posts) != 0 {
		t.Errorf("空库应返回空列表, got %+v", result)
	}
}
