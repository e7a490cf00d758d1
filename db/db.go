// Package db 把地点表存放在 PostgreSQL 中 (可选的数据来源)
//
// 只保存地点和路线视频，不保存任何查询记录。
package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"campus-nav/model"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config 数据库连接配置
type Config struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MaxRetries    int
	RetryInterval time.Duration
}

// DSN 拼接 PostgreSQL 连接串
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port,
	)
}

// LocationRecord 地点表
type LocationRecord struct {
	ID       uint           `gorm:"primaryKey"`
	Position int            `gorm:"not null;index"` // 在地点表中的顺序
	Name     string         `gorm:"uniqueIndex;not null"`
	Lat      float64        `gorm:"not null"`
	Lng      float64        `gorm:"not null"`
	Category string         `gorm:"index;not null"`
	Aliases  pq.StringArray `gorm:"type:text[]"`
}

func (LocationRecord) TableName() string { return "locations" }

// RouteMediaRecord 路线视频表
type RouteMediaRecord struct {
	ID       uint   `gorm:"primaryKey"`
	FromName string `gorm:"not null;index"`
	ToName   string `gorm:"not null;index"`
	Resource string `gorm:"not null"`
}

func (RouteMediaRecord) TableName() string { return "route_media" }

// Store 数据库中的地图数据
type Store struct {
	DB *gorm.DB
}

// Open 连接数据库并自动迁移表结构
// 带重试 (Docker 启动时数据库可能还没准备好)
func Open(cfg Config) (*Store, error) {
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 1
	}

	var (
		conn *gorm.DB
		err  error
	)
	for i := 0; i < retries; i++ {
		conn, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("等待数据库就绪... (%d/%d): %v", i+1, retries, err)
		if i < retries-1 {
			time.Sleep(cfg.RetryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 自动迁移模式 (自动创建表结构)
	if err := conn.AutoMigrate(&LocationRecord{}, &RouteMediaRecord{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	log.Println("数据库连接并初始化成功！")
	return &Store{DB: conn}, nil
}

// Close 关闭连接
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedIfEmpty 地点表为空时导入初始数据，返回是否导入
func (s *Store) SeedIfEmpty(ctx context.Context, data *model.MapData) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&LocationRecord{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("统计地点失败: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	log.Println("检测到数据库为空，正在导入地图数据...")
	if err := s.Replace(ctx, data); err != nil {
		return false, err
	}
	return true, nil
}

// Replace 在一个事务里用新数据替换全部地点和视频
func (s *Store) Replace(ctx context.Context, data *model.MapData) error {
	locations, media := ToRecords(data)

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RouteMediaRecord{}).Error; err != nil {
			return fmt.Errorf("清空路线视频失败: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&LocationRecord{}).Error; err != nil {
			return fmt.Errorf("清空地点失败: %w", err)
		}

		if len(locations) > 0 {
			if err := tx.CreateInBatches(locations, 100).Error; err != nil {
				return fmt.Errorf("插入地点失败: %w", err)
			}
			log.Printf("导入了 %d 个地点", len(locations))
		}
		if len(media) > 0 {
			if err := tx.CreateInBatches(media, 100).Error; err != nil {
				return fmt.Errorf("插入路线视频失败: %w", err)
			}
			log.Printf("导入了 %d 条路线视频", len(media))
		}
		return nil
	})
}

// Load 读取全部地图数据，实现 navigator.Source
func (s *Store) Load(ctx context.Context) (*model.MapData, error) {
	var locations []LocationRecord
	if err := s.DB.WithContext(ctx).Order("position").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("读取地点失败: %w", err)
	}

	var media []RouteMediaRecord
	if err := s.DB.WithContext(ctx).Order("id").Find(&media).Error; err != nil {
		return nil, fmt.Errorf("读取路线视频失败: %w", err)
	}

	return FromRecords(locations, media), nil
}

// ToRecords 地图数据转为数据库记录
func ToRecords(data *model.MapData) ([]LocationRecord, []RouteMediaRecord) {
	if data == nil {
		return nil, nil
	}

	locations := make([]LocationRecord, len(data.Locations))
	for i, l := range data.Locations {
		locations[i] = LocationRecord{
			Position: i,
			Name:     l.Name,
			Lat:      l.Lat,
			Lng:      l.Lng,
			Category: l.Category,
			Aliases:  pq.StringArray(l.Aliases),
		}
	}

	media := make([]RouteMediaRecord, len(data.Media))
	for i, m := range data.Media {
		media[i] = RouteMediaRecord{FromName: m.From, ToName: m.To, Resource: m.Resource}
	}
	return locations, media
}

// FromRecords 数据库记录转回地图数据
func FromRecords(locations []LocationRecord, media []RouteMediaRecord) *model.MapData {
	data := &model.MapData{
		Meta:      map[string]interface{}{"source": "postgres"},
		Locations: make([]model.Location, len(locations)),
		Media:     make([]model.RouteMedia, len(media)),
	}
	for i, r := range locations {
		var aliases []string
		if len(r.Aliases) > 0 {
			aliases = []string(r.Aliases)
		}
		data.Locations[i] = model.Location{
			Name:     r.Name,
			Lat:      r.Lat,
			Lng:      r.Lng,
			Category: r.Category,
			Aliases:  aliases,
		}
	}
	for i, r := range media {
		data.Media[i] = model.RouteMedia{From: r.FromName, To: r.ToName, Resource: r.Resource}
	}
	return data
}
