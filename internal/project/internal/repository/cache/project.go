package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/leanmaker/leanmaker/internal/project/internal/domain"
	"github.com/pkg/errors"
)

const projectExpiration = 10 * time.Minute

var ErrProjectNotCached = errors.New("项目不在缓存里")

type ProjectCache interface {
	Set(ctx context.Context, p domain.Project) error
	Get(ctx context.Context, id int64) (domain.Project, error)
	Del(ctx context.Context, id int64) error
}

type projectCache struct {
	ec ecache.Cache
}

func NewProjectCache(ec ecache.Cache) ProjectCache {
	return &projectCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "project:",
		},
	}
}

func (c *projectCache) Set(ctx context.Context, p domain.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化项目失败")
	}
	return c.ec.Set(ctx, c.key(p.ID), string(data), projectExpiration)
}

func (c *projectCache) Get(ctx context.Context, id int64) (domain.Project, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Project{}, ErrProjectNotCached
	}
	if val.Err != nil {
		return domain.Project{}, errors.Wrap(val.Err, "查询项目缓存出错")
	}
	var p domain.Project
	err := json.Unmarshal([]byte(val.Val.(string)), &p)
	if err != nil {
		return domain.Project{}, errors.Wrap(err, "反序列化项目失败")
	}
	return p, nil
}

func (c *projectCache) Del(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *projectCache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
