package service

import (
	"context"
	"strings"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
	"conecta-joven/internal/store"
)

var (
	listJobs               = store.ListJobs
	createJob              = store.CreateJob
	deleteJob              = store.DeleteJob
	listApplicationHistory = store.ListApplicationHistory
)

// JobInput 為建立職缺的欄位
type JobInput struct {
	Title       string
	Company     string
	Link        string
	Description string
}

func ListJobs(ctx context.Context, db database.DB, query string) ([]model.Job, error) {
	return listJobs(ctx, db, strings.TrimSpace(query))
}

// CreateJob 僅限管理員；標題、公司與連結為必填
func CreateJob(ctx context.Context, db database.DB, in JobInput, actor model.Session) (*model.Job, error) {
	if !actor.IsAdmin {
		return nil, newError(ErrForbidden, "only the administrator can add job postings")
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Link = strings.TrimSpace(in.Link)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Company == "" || in.Link == "" {
		return nil, newError(ErrValidation, "title, company and link are required")
	}

	createdBy := actor.UserID
	return createJob(ctx, db, &model.Job{
		Title:       in.Title,
		Company:     in.Company,
		Link:        in.Link,
		Description: in.Description,
		CreatedBy:   &createdBy,
	})
}

// DeleteJob 任何管理員皆可刪除任何職缺，不存在的 id 不回報錯誤
func DeleteJob(ctx context.Context, db database.DB, id int, actor model.Session) error {
	if !actor.IsAdmin {
		return newError(ErrForbidden, "admin privileges required")
	}
	return deleteJob(ctx, db, id)
}

// ApplicationHistory 只提供給一般使用者，管理員沒有申請紀錄可看
func ApplicationHistory(ctx context.Context, db database.DB, actor model.Session) ([]model.AppliedJob, error) {
	if actor.IsAdmin {
		return nil, newError(ErrForbidden, "application history is only available to users")
	}
	return listApplicationHistory(ctx, db, actor.UserID)
}
