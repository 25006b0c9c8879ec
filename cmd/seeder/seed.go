package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/service"
	"github.com/Xushengqwer/blog_service/slugify"
)

var seedCategories = []string{"general", "design", "engineering", "announcements"}

// Seed 通过服务层填充测试数据：先建作者资料，再并发创建文章。
// 走服务层而不是直接写库，保证 slug 派生、发布落章等规则与线上路径一致。
func Seed(ctx context.Context, postSvc service.PostService, profileRepo mysql.AuthorProfileRepository, logger *core.ZapLogger, numAuthors int, numPosts int) {
	logger.Info("开始填充测试数据 (通过服务层)...",
		zap.Int("作者数量", numAuthors),
		zap.Int("文章数量", numPosts))

	// 1. 先准备作者资料，文章读取路径联表时才有展示名。
	authorIDs := make([]string, 0, numAuthors)
	for i := 0; i < numAuthors; i++ {
		authorID := uuid.New().String()
		profile := &entities.AuthorProfile{
			UserID:      authorID,
			DisplayName: sql.NullString{String: gofakeit.Name(), Valid: true},
		}
		if err := profileRepo.UpsertProfile(ctx, profile); err != nil {
			logger.Error("创建作者资料失败", zap.Error(err), zap.String("user_id", authorID))
			continue
		}
		authorIDs = append(authorIDs, authorID)
	}
	if len(authorIDs) == 0 {
		logger.Error("没有任何作者资料创建成功，中止文章填充")
		return
	}

	// 2. 并发创建文章。
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			authorID := authorIDs[itemIndex%len(authorIDs)]
			title := strings.TrimSuffix(gofakeit.Sentence(gofakeit.Number(4, 10)), ".")

			// 显式给 slug 加唯一后缀，避免随机标题撞出 slug 冲突。
			slug := fmt.Sprintf("%s-%s", slugify.Derive(title), uuid.NewString()[:8])
			excerpt := gofakeit.Sentence(12)
			category := seedCategories[gofakeit.Number(0, len(seedCategories)-1)]
			thumbnail := gofakeit.ImageURL(640, 360)

			// 大约 2/3 发布，1/6 草稿，1/6 定时。
			var status enums.PostStatus
			var scheduledAt *time.Time
			switch gofakeit.Number(0, 5) {
			case 0:
				status = enums.PostStatusDraft
			case 1:
				status = enums.PostStatusScheduled
				due := time.Now().Add(time.Duration(gofakeit.Number(5, 120)) * time.Minute)
				scheduledAt = &due
			default:
				status = enums.PostStatusPublished
			}

			createReq := &dto.CreatePostRequest{
				Title:        title,
				Content:      gofakeit.Paragraph(3, 5, 20, "\n\n"),
				Slug:         &slug,
				Excerpt:      &excerpt,
				ThumbnailURL: &thumbnail,
				Category:     &category,
				Tags:         []string{gofakeit.Word(), gofakeit.Word()},
				Status:       &status,
				ScheduledAt:  scheduledAt,
			}

			resp, err := postSvc.CreatePost(ctx, authorID, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建文章 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("author_id", authorID))
			} else {
				logger.Info(fmt.Sprintf("成功创建文章 %d/%d", itemIndex+1, numPosts),
					zap.String("post_id", resp.ID),
					zap.String("slug", resp.Slug),
					zap.String("status", string(resp.Status)))
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}
