// Package optimizer 提供局部搜索优化器
package optimizer

import (
	"math/rand"

	"github.com/wardroster/wardroster/pkg/model"
)

// NeighborhoodGenerator 邻域生成器
// 随机源由调用方注入，同一种子产生同一搜索轨迹
type NeighborhoodGenerator struct {
	rng *rand.Rand
}

// NewNeighborhoodGenerator 创建邻域生成器
func NewNeighborhoodGenerator(rng *rand.Rand) *NeighborhoodGenerator {
	return &NeighborhoodGenerator{rng: rng}
}

// Swap 随机交换两个分配的护士，生成邻域解
// 分配少于两个时无法构造邻域，返回 nil
func (g *NeighborhoodGenerator) Swap(assignments []model.Assignment) []model.Assignment {
	if len(assignments) < 2 {
		return nil
	}

	i := g.rng.Intn(len(assignments))
	j := g.rng.Intn(len(assignments))
	if i == j {
		return nil
	}

	neighbor := model.CloneAssignments(assignments)
	neighbor[i].NurseID, neighbor[j].NurseID = neighbor[j].NurseID, neighbor[i].NurseID
	return neighbor
}
