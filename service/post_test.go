package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// --- 测试替身 ---

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{Level: "error", Encoding: "json"})
	if err != nil {
		t.Fatalf("初始化测试 logger 失败: %v", err)
	}
	return logger
}

// fakePostRepo 是 BlogPostRepository 的内存实现，语义与 MySQL 实现对齐。
type fakePostRepo struct {
	posts    map[string]*entities.BlogPost
	profiles map[string]string // userID -> 展示名
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:    make(map[string]*entities.BlogPost),
		profiles: make(map[string]string),
	}
}

func (r *fakePostRepo) withAuthor(p *entities.BlogPost) *entities.BlogPostWithAuthor {
	cp := *p
	row := &entities.BlogPostWithAuthor{BlogPost: cp}
	if name, ok := r.profiles[p.AuthorID]; ok {
		row.AuthorDisplayName = sql.NullString{String: name, Valid: true}
	}
	return row
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *entities.BlogPost) error {
	for _, existing := range r.posts {
		if existing.Slug == post.Slug {
			return myErrors.ErrSlugConflict
		}
	}
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = now
	}
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, postID string, authorID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	post, ok := r.posts[postID]
	if !ok || post.AuthorID != authorID {
		return commonerrors.ErrRepoNotFound
	}
	for key, value := range updates {
		switch key {
		case "title":
			post.Title = value.(string)
		case "content":
			post.Content = value.(string)
		case "excerpt":
			post.Excerpt = sql.NullString{String: value.(string), Valid: true}
		case "thumbnail_url":
			post.ThumbnailURL = sql.NullString{String: value.(string), Valid: true}
		case "category":
			post.Category = value.(string)
		case "tags":
			var tags []string
			if err := json.Unmarshal([]byte(value.(string)), &tags); err != nil {
				return err
			}
			post.Tags = tags
		case "status":
			post.Status = value.(enums.PostStatus)
		case "scheduled_at":
			at := value.(time.Time)
			post.ScheduledAt = &at
		case "published_at":
			at := value.(time.Time)
			post.PublishedAt = &at
		case "updated_at":
			post.UpdatedAt = value.(time.Time)
		default:
			return fmt.Errorf("fakePostRepo: 未知的更新字段 %q", key)
		}
	}
	post.UpdatedAt = time.Now()
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, postID string, authorID string) error {
	post, ok := r.posts[postID]
	if ok && post.AuthorID == authorID {
		delete(r.posts, postID)
	}
	// 零行命中静默成功
	return nil
}

func (r *fakePostRepo) GetPublishedBySlug(_ context.Context, slug string) (*entities.BlogPostWithAuthor, error) {
	for _, post := range r.posts {
		if post.Slug == slug && post.Status == enums.PostStatusPublished {
			return r.withAuthor(post), nil
		}
	}
	return nil, commonerrors.ErrRepoNotFound
}

func (r *fakePostRepo) GetByIDForAuthor(_ context.Context, postID string, authorID string) (*entities.BlogPostWithAuthor, error) {
	post, ok := r.posts[postID]
	if !ok || post.AuthorID != authorID {
		return nil, commonerrors.ErrRepoNotFound
	}
	return r.withAuthor(post), nil
}

func (r *fakePostRepo) ListPublished(_ context.Context, search string, category string) ([]*entities.BlogPostWithAuthor, error) {
	var rows []*entities.BlogPostWithAuthor
	needle := strings.ToLower(search)
	for _, post := range r.posts {
		if post.Status != enums.PostStatusPublished {
			continue
		}
		if category != "" && category != "all" && post.Category != category {
			continue
		}
		if needle != "" {
			haystacks := []string{post.Title, post.Content, post.Excerpt.String}
			matched := false
			for _, h := range haystacks {
				if strings.Contains(strings.ToLower(h), needle) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		rows = append(rows, r.withAuthor(post))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := rows[i].PublishedAt, rows[j].PublishedAt
		if pi != nil && pj != nil && !pi.Equal(*pj) {
			return pi.After(*pj)
		}
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	return rows, nil
}

func (r *fakePostRepo) ListByAuthor(_ context.Context, authorID string) ([]*entities.BlogPostWithAuthor, error) {
	var rows []*entities.BlogPostWithAuthor
	for _, post := range r.posts {
		if post.AuthorID == authorID {
			rows = append(rows, r.withAuthor(post))
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

func (r *fakePostRepo) PublishDueScheduled(_ context.Context, now time.Time) (int64, error) {
	var affected int64
	for _, post := range r.posts {
		if post.Status == enums.PostStatusScheduled && post.ScheduledAt != nil && !post.ScheduledAt.After(now) {
			post.Status = enums.PostStatusPublished
			if post.PublishedAt == nil {
				at := now
				post.PublishedAt = &at
			}
			post.UpdatedAt = now
			affected++
		}
	}
	return affected, nil
}

// fakePostCache 是 PostCache 的内存实现。
type fakePostCache struct {
	entries map[string]*vo.BlogPostVO
	sets    int
}

func newFakePostCache() *fakePostCache {
	return &fakePostCache{entries: make(map[string]*vo.BlogPostVO)}
}

func (c *fakePostCache) GetBySlug(_ context.Context, slug string) (*vo.BlogPostVO, error) {
	if post, ok := c.entries[slug]; ok {
		cp := *post
		return &cp, nil
	}
	return nil, myErrors.ErrCacheMiss
}

func (c *fakePostCache) SetBySlug(_ context.Context, post *vo.BlogPostVO) error {
	if post == nil || post.Slug == "" {
		return nil
	}
	cp := *post
	c.entries[post.Slug] = &cp
	c.sets++
	return nil
}

func (c *fakePostCache) InvalidateBySlug(_ context.Context, slug string) error {
	delete(c.entries, slug)
	return nil
}

// fakeCOSClient 记录上传的对象键并返回可预测的 URL。
type fakeCOSClient struct {
	lastObjectKey string
}

func (f *fakeCOSClient) UploadFile(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) (string, error) {
	if _, err := io.ReadAll(reader); err != nil {
		return "", err
	}
	f.lastObjectKey = objectKey
	return "https://cdn.example.com/" + objectKey, nil
}

func (f *fakeCOSClient) DeleteObject(_ context.Context, _ string) error {
	return nil
}

type postServiceFixture struct {
	svc   PostService
	repo  *fakePostRepo
	cache *fakePostCache
	cos   *fakeCOSClient
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()
	repo := newFakePostRepo()
	cache := newFakePostCache()
	cos := &fakeCOSClient{}
	// kafka 生产者传 nil：事件发送被跳过，测试不依赖 broker。
	svc := NewPostService(repo, cache, cos, nil, newTestLogger(t))
	return &postServiceFixture{svc: svc, repo: repo, cache: cache, cos: cos}
}

func strPtr(s string) *string { return &s }

func statusPtr(s enums.PostStatus) *enums.PostStatus { return &s }

// --- CreatePost ---

func TestCreatePostDerivesSlugAndDefaults(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	post, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
		Title:   "Hello, World! 2024",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("CreatePost 返回错误: %v", err)
	}
	if post.Slug != "hello-world-2024" {
		t.Errorf("Slug = %q, want %q", post.Slug, "hello-world-2024")
	}
	if post.Status != enums.PostStatusDraft {
		t.Errorf("Status = %q, want draft", post.Status)
	}
	if post.Category != "general" {
		t.Errorf("Category = %q, want general", post.Category)
	}
	if post.AuthorID != "author-1" {
		t.Errorf("AuthorID = %q, want author-1", post.AuthorID)
	}
	if post.PublishedAt != nil {
		t.Errorf("草稿不应有发布时间, got %v", post.PublishedAt)
	}
}

func TestCreatePostExplicitSlugWins(t *testing.T) {
	f := newPostServiceFixture(t)

	post, err := f.svc.CreatePost(context.Background(), "author-1", &dto.CreatePostRequest{
		Title:   "Some Title",
		Content: "body",
		Slug:    strPtr("custom-slug"),
	})
	if err != nil {
		t.Fatalf("CreatePost 返回错误: %v", err)
	}
	if post.Slug != "custom-slug" {
		t.Errorf("Slug = %q, want custom-slug", post.Slug)
	}
}

func TestCreatePostPublishedStampsPublishedAt(t *testing.T) {
	f := newPostServiceFixture(t)
	before := time.Now()

	post, err := f.svc.CreatePost(context.Background(), "author-1", &dto.CreatePostRequest{
		Title:   "Launch Day",
		Content: "body",
		Status:  statusPtr(enums.PostStatusPublished),
	})
	if err != nil {
		t.Fatalf("CreatePost 返回错误: %v", err)
	}
	if post.PublishedAt == nil {
		t.Fatal("创建即发布应落章发布时间")
	}
	if post.PublishedAt.Before(before) {
		t.Errorf("PublishedAt = %v 早于创建开始时间 %v", post.PublishedAt, before)
	}
}

func TestCreatePostRejectsMissingIdentity(t *testing.T) {
	f := newPostServiceFixture(t)

	_, err := f.svc.CreatePost(context.Background(), "", &dto.CreatePostRequest{Title: "t", Content: "c"})
	if !errors.Is(err, commonerrors.ErrUserNotLoggedIn) {
		t.Errorf("err = %v, want ErrUserNotLoggedIn", err)
	}
}

func TestCreatePostRejectsUnsluggableTitle(t *testing.T) {
	f := newPostServiceFixture(t)

	_, err := f.svc.CreatePost(context.Background(), "author-1", &dto.CreatePostRequest{Title: "!!!", Content: "c"})
	if !errors.Is(err, myErrors.ErrSlugEmpty) {
		t.Errorf("err = %v, want ErrSlugEmpty", err)
	}
}

func TestCreatePostSlugConflict(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{Title: "Same Title", Content: "a"}); err != nil {
		t.Fatalf("首次创建失败: %v", err)
	}
	_, err := f.svc.CreatePost(ctx, "author-2", &dto.CreatePostRequest{Title: "Same Title", Content: "b"})
	if !errors.Is(err, myErrors.ErrSlugConflict) {
		t.Errorf("err = %v, want ErrSlugConflict", err)
	}
}

// --- UpdatePost ---

func TestUpdatePostPublishStampsOnce(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{Title: "Draft Post", Content: "c"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	before := time.Now()
	published, err := f.svc.UpdatePost(ctx, "author-1", created.ID, &dto.UpdatePostRequest{
		Status: statusPtr(enums.PostStatusPublished),
	})
	if err != nil {
		t.Fatalf("发布失败: %v", err)
	}
	if published.PublishedAt == nil || published.PublishedAt.Before(before) {
		t.Fatalf("发布应落章当前时间, got %v", published.PublishedAt)
	}
	firstPublishedAt := *published.PublishedAt

	// 回到草稿：发布历史保留。
	reverted, err := f.svc.UpdatePost(ctx, "author-1", created.ID, &dto.UpdatePostRequest{
		Status: statusPtr(enums.PostStatusDraft),
	})
	if err != nil {
		t.Fatalf("撤回失败: %v", err)
	}
	if reverted.PublishedAt == nil || !reverted.PublishedAt.Equal(firstPublishedAt) {
		t.Errorf("撤回不应触碰发布时间: got %v, want %v", reverted.PublishedAt, firstPublishedAt)
	}
}

func TestUpdatePostExplicitPublishedAtWins(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{Title: "Backdated", Content: "c"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	explicit := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	updated, err := f.svc.UpdatePost(ctx, "author-1", created.ID, &dto.UpdatePostRequest{
		Status:      statusPtr(enums.PostStatusPublished),
		PublishedAt: &explicit,
	})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(explicit) {
		t.Errorf("显式发布时间应生效: got %v, want %v", updated.PublishedAt, explicit)
	}
}

func TestUpdatePostPartialPatchKeepsOtherFields(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
		Title:    "Original Title",
		Content:  "original content",
		Excerpt:  strPtr("original excerpt"),
		Category: strPtr("design"),
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	updated, err := f.svc.UpdatePost(ctx, "author-1", created.ID, &dto.UpdatePostRequest{
		Title: strPtr("New Title"),
	})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Title != "New Title" {
		t.Errorf("Title = %q, want New Title", updated.Title)
	}
	if updated.Content != "original content" {
		t.Errorf("补丁外字段被改动: Content = %q", updated.Content)
	}
	if updated.Excerpt == nil || *updated.Excerpt != "original excerpt" {
		t.Errorf("补丁外字段被改动: Excerpt = %v", updated.Excerpt)
	}
	if updated.Category != "design" {
		t.Errorf("补丁外字段被改动: Category = %q", updated.Category)
	}
	if updated.Slug != created.Slug {
		t.Errorf("slug 不可变: got %q, want %q", updated.Slug, created.Slug)
	}
}

func TestUpdatePostNonOwnerGetsNotFound(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{Title: "Mine", Content: "c"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	_, err = f.svc.UpdatePost(ctx, "intruder", created.ID, &dto.UpdatePostRequest{Title: strPtr("Hijacked")})
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("非作者更新应得到 NotFound, got %v", err)
	}
}

func TestUpdatePostInvalidatesSlugCache(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
		Title:   "Cached Post",
		Content: "v1",
		Status:  statusPtr(enums.PostStatusPublished),
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 预热缓存
	if _, err := f.svc.GetPostBySlug(ctx, created.Slug); err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if _, ok := f.cache.entries[created.Slug]; !ok {
		t.Fatal("读取后缓存应被回填")
	}

	if _, err := f.svc.UpdatePost(ctx, "author-1", created.ID, &dto.UpdatePostRequest{Content: strPtr("v2")}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if _, ok := f.cache.entries[created.Slug]; ok {
		t.Error("更新后缓存应被失效")
	}

	// 再次读取拿到新内容
	fresh, err := f.svc.GetPostBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if fresh.Content != "v2" {
		t.Errorf("Content = %q, want v2", fresh.Content)
	}
}

// --- DeletePost ---

func TestDeletePostIsIdempotent(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{Title: "Doomed", Content: "c"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	if err := f.svc.DeletePost(ctx, "author-1", created.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	// 重复删除与删除不存在的 ID 都静默成功。
	if err := f.svc.DeletePost(ctx, "author-1", created.ID); err != nil {
		t.Errorf("重复删除应成功, got %v", err)
	}
	if err := f.svc.DeletePost(ctx, "author-1", "no-such-id"); err != nil {
		t.Errorf("删除不存在的文章应成功, got %v", err)
	}
}

func TestDeletePostNonOwnerLeavesPostIntact(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{Title: "Protected", Content: "c"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 非作者删除：静默成功但不删任何东西。
	if err := f.svc.DeletePost(ctx, "intruder", created.ID); err != nil {
		t.Fatalf("非作者删除应静默成功, got %v", err)
	}
	if _, ok := f.repo.posts[created.ID]; !ok {
		t.Error("非作者删除不应移除文章")
	}
}

// --- GetPostBySlug ---

func TestGetPostBySlugCacheAside(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()
	f.repo.profiles["author-1"] = "Ada"

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{
		Title:   "Published Post",
		Content: "c",
		Status:  statusPtr(enums.PostStatusPublished),
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	first, err := f.svc.GetPostBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("首次读取失败: %v", err)
	}
	if first.AuthorDisplayName == nil || *first.AuthorDisplayName != "Ada" {
		t.Errorf("应联表出作者展示名, got %v", first.AuthorDisplayName)
	}
	if f.cache.sets != 1 {
		t.Fatalf("首次读取应回填缓存一次, sets = %d", f.cache.sets)
	}

	// 第二次命中缓存，不再回填。
	second, err := f.svc.GetPostBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("二次读取失败: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("缓存命中返回了不同的文章: %q vs %q", second.ID, first.ID)
	}
	if f.cache.sets != 1 {
		t.Errorf("缓存命中不应再回填, sets = %d", f.cache.sets)
	}
}

func TestGetPostBySlugHidesDrafts(t *testing.T) {
	f := newPostServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreatePost(ctx, "author-1", &dto.CreatePostRequest{Title: "Secret Draft", Content: "c"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	_, err = f.svc.GetPostBySlug(ctx, created.Slug)
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("草稿对公开路径应不可见, got %v", err)
	}
}

// --- UploadThumbnail ---

func newTestFileHeader(t *testing.T, fieldName, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("构造表单文件失败: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入表单文件失败: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("关闭表单失败: %v", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("解析表单失败: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[fieldName][0]
}

func TestUploadThumbnail(t *testing.T) {
	f := newPostServiceFixture(t)
	fh := newTestFileHeader(t, "file", "cover.PNG", []byte("fake-image-bytes"))

	result, err := f.svc.UploadThumbnail(context.Background(), "author-1", "my-post", fh)
	if err != nil {
		t.Fatalf("UploadThumbnail 返回错误: %v", err)
	}
	if !strings.HasPrefix(f.cos.lastObjectKey, "blog/thumbnails/my-post/") {
		t.Errorf("对象键 = %q, 应以 blog/thumbnails/my-post/ 开头", f.cos.lastObjectKey)
	}
	if !strings.HasSuffix(f.cos.lastObjectKey, ".png") {
		t.Errorf("对象键 = %q, 扩展名应转为小写 .png", f.cos.lastObjectKey)
	}
	if result.URL != "https://cdn.example.com/"+f.cos.lastObjectKey {
		t.Errorf("URL = %q 与对象键不对应", result.URL)
	}
}

func TestUploadThumbnailWithoutScopeUsesPlaceholder(t *testing.T) {
	f := newPostServiceFixture(t)
	fh := newTestFileHeader(t, "file", "cover.jpg", []byte("fake"))

	if _, err := f.svc.UploadThumbnail(context.Background(), "author-1", "", fh); err != nil {
		t.Fatalf("UploadThumbnail 返回错误: %v", err)
	}
	if !strings.HasPrefix(f.cos.lastObjectKey, "blog/thumbnails/temp/") {
		t.Errorf("对象键 = %q, 缺省范围应使用 temp 占位目录", f.cos.lastObjectKey)
	}
}

func TestGenerateThumbnailObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	key := generateThumbnailObjectKey("My Post!", "Cover.JPG", now)
	want := "blog/thumbnails/my-post/1700000000000.jpg"
	if key != want {
		t.Errorf("generateThumbnailObjectKey = %q, want %q", key, want)
	}
}
