package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// Partner 협력회사 엔티티
type Partner struct {
	ID                int64
	OrgID             int
	CompanyName       string
	CorpCode          string
	StockCode         string
	ContractStartDate string
	Status            string
}

// 협력회사 상태
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusPending  = "PENDING"
)

func validStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusPending
}

// PartnerRepo 협력회사 저장소 인터페이스
type PartnerRepo interface {
	// List 는 소프트 삭제를 제외한 목록과 전체 건수를 돌려준다.
	List(ctx context.Context, orgID, offset, limit int, nameFilter string) ([]*Partner, int, error)
	// FindByCorpCode 는 삭제된 레코드를 포함해 조회한다. 없으면 (nil, false).
	FindByCorpCode(ctx context.Context, orgID int, corpCode string) (p *Partner, deleted bool, err error)
	Create(ctx context.Context, p *Partner) (int64, error)
	// Restore 는 소프트 삭제 레코드를 복원하면서 계약 정보를 갱신한다.
	Restore(ctx context.Context, id int64, contractStartDate, status string) error
	Get(ctx context.Context, orgID int, id int64) (*Partner, error)
	Update(ctx context.Context, orgID int, id int64, contractStartDate, status *string) (*Partner, error)
	SoftDelete(ctx context.Context, orgID int, id int64) error
	CountByStatus(ctx context.Context, orgID int) (map[string]int, error)
}

// PartnerUseCase 협력회사 등록부 업무 로직
type PartnerUseCase struct {
	repo PartnerRepo
	log  *log.Helper
}

func NewPartnerUseCase(repo PartnerRepo, logger log.Logger) *PartnerUseCase {
	return &PartnerUseCase{repo: repo, log: log.NewHelper(logger)}
}

// List 는 페이지 단위 목록을 돌려준다. page 는 1부터 센다.
func (uc *PartnerUseCase) List(ctx context.Context, orgID, page, pageSize int, nameFilter string) ([]*Partner, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	return uc.repo.List(ctx, orgID, offset, pageSize, nameFilter)
}

// Create 는 협력회사를 등록한다. 같은 corp_code 의 소프트 삭제 레코드가 있으면
// 새로 만들지 않고 복원하며 restored=true 로 알린다. 살아 있는 중복은 Conflict.
func (uc *PartnerUseCase) Create(ctx context.Context, p *Partner) (*Partner, bool, error) {
	if p.CompanyName == "" || p.CorpCode == "" {
		return nil, false, errors.BadRequest("PARTNER_INVALID", "companyName and corpCode are required")
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if !validStatus(p.Status) {
		return nil, false, errors.BadRequest("PARTNER_INVALID", "invalid status: "+p.Status)
	}

	existing, deleted, err := uc.repo.FindByCorpCode(ctx, p.OrgID, p.CorpCode)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if !deleted {
			return nil, false, errors.Conflict("PARTNER_DUPLICATED", "partner company already registered: "+p.CorpCode)
		}
		if err := uc.repo.Restore(ctx, existing.ID, p.ContractStartDate, p.Status); err != nil {
			return nil, false, err
		}
		restored, err := uc.repo.Get(ctx, p.OrgID, existing.ID)
		if err != nil {
			return nil, false, err
		}
		uc.log.WithContext(ctx).Infof("partner restored: org=%d corp_code=%s", p.OrgID, p.CorpCode)
		return restored, true, nil
	}

	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, false, err
	}
	p.ID = id
	return p, false, nil
}

// Update 는 계약 시작일과 상태만 수정한다. 그 밖의 필드는 수정 불가다.
func (uc *PartnerUseCase) Update(ctx context.Context, orgID int, id int64, contractStartDate, status *string) (*Partner, error) {
	if status != nil && !validStatus(*status) {
		return nil, errors.BadRequest("PARTNER_INVALID", "invalid status: "+*status)
	}
	return uc.repo.Update(ctx, orgID, id, contractStartDate, status)
}

// Delete 는 소프트 삭제한다.
func (uc *PartnerUseCase) Delete(ctx context.Context, orgID int, id int64) error {
	return uc.repo.SoftDelete(ctx, orgID, id)
}

// CountByStatus 는 상태별 협력회사 수를 돌려준다.
func (uc *PartnerUseCase) CountByStatus(ctx context.Context, orgID int) (map[string]int, error) {
	return uc.repo.CountByStatus(ctx, orgID)
}
