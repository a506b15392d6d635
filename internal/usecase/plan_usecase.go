package usecase

import (
	"fmt"
	"strings"

	"huiqs/pkg/errors"
)

type PlanUseCase struct{}

func NewPlanUseCase() *PlanUseCase {
	return &PlanUseCase{}
}

type GeneratePlanInput struct {
	From        string
	To          string
	Date        string
	Days        int
	Preferences []string
}

// GeneratePlan produces the canned day-by-day itinerary text shown before a
// booking. Pure templating, no external calls.
func (uc *PlanUseCase) GeneratePlan(input GeneratePlanInput) (string, error) {
	if input.From == "" || input.To == "" || input.Date == "" || input.Days == 0 {
		return "", errors.BadRequest("Missing required parameters: from, to, date, days", nil)
	}
	if input.Days < 0 || input.Days > 30 {
		return "", errors.BadRequest("Days must be a number between 1 and 30", nil)
	}

	preferences := "无特殊偏好"
	if len(input.Preferences) > 0 {
		preferences = strings.Join(input.Preferences, "、")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s → %s %d天旅行计划\n\n", input.From, input.To, input.Days)
	b.WriteString("## 行程概览\n")
	fmt.Fprintf(&b, "**出发地：** %s\n", input.From)
	fmt.Fprintf(&b, "**目的地：** %s\n", input.To)
	fmt.Fprintf(&b, "**出发日期：** %s\n", input.Date)
	fmt.Fprintf(&b, "**行程天数：** %d天\n", input.Days)
	fmt.Fprintf(&b, "**旅行偏好：** %s\n\n", preferences)
	b.WriteString("## 详细行程安排\n\n")
	b.WriteString(dayByDayItinerary(input.From, input.To, input.Days, input.Preferences))
	b.WriteString("## 旅行贴士\n")
	fmt.Fprintf(&b, "1. **交通建议：** 建议提前预订%s到%s的交通工具，可选择飞机、高铁或自驾\n", input.From, input.To)
	b.WriteString("2. **住宿推荐：** 根据预算选择合适的酒店，建议预订市中心或景区附近的住宿\n")
	b.WriteString("3. **美食推荐：** 不要错过当地特色美食和小吃\n")
	b.WriteString("4. **购物建议：** 可以购买当地特产作为纪念品\n")
	b.WriteString("5. **注意事项：** 关注天气变化，携带必要的衣物和用品\n\n")
	b.WriteString("## 预算参考\n")
	b.WriteString("- **交通费用：** 根据选择的交通方式而定\n")
	b.WriteString("- **住宿费用：** 每晚200-800元不等\n")
	b.WriteString("- **餐饮费用：** 每人每天100-300元\n")
	b.WriteString("- **景点门票：** 根据具体景点而定\n")
	b.WriteString("- **购物娱乐：** 根据个人需求而定\n\n")
	b.WriteString("祝您旅途愉快！🎉")

	return b.String(), nil
}

func dayByDayItinerary(from, to string, days int, preferences []string) string {
	var b strings.Builder

	for day := 1; day <= days; day++ {
		fmt.Fprintf(&b, "### 第%d天\n", day)

		switch {
		case day == 1:
			fmt.Fprintf(&b, "**上午：** 从%s出发前往%s\n", from, to)
			fmt.Fprintf(&b, "**下午：** 抵达%s，办理酒店入住，适应当地环境\n", to)
			b.WriteString("**晚上：** 在酒店附近用餐，早休息调整状态\n\n")
		case day == days && days > 1:
			b.WriteString("**上午：** 最后的购物时光，购买特产和纪念品\n")
			b.WriteString("**下午：** 整理行李，前往机场/车站\n")
			fmt.Fprintf(&b, "**晚上：** 返回%s\n\n", from)
		default:
			morning, afternoon, evening := activitiesForDay(preferences)
			fmt.Fprintf(&b, "**上午：** %s\n", morning)
			fmt.Fprintf(&b, "**下午：** %s\n", afternoon)
			fmt.Fprintf(&b, "**晚上：** %s\n\n", evening)
		}
	}

	return b.String()
}

// activitiesForDay picks middle-day activities based on stated preferences,
// falling back to generic sightseeing.
func activitiesForDay(preferences []string) (morning, afternoon, evening string) {
	has := func(p string) bool {
		for _, pref := range preferences {
			if pref == p {
				return true
			}
		}
		return false
	}

	morning = "参观当地著名景点"
	afternoon = "继续游览，体验当地文化"
	evening = "品尝当地美食，休闲漫步"

	if has("历史古迹") {
		morning = "参观历史古迹和博物馆"
	} else if has("自然风光") {
		morning = "游览自然景观和公园"
	} else if has("主题乐园") {
		morning = "前往主题乐园游玩"
	}

	if has("文化体验") {
		afternoon = "体验当地文化活动和传统手工艺"
	} else if has("购物") {
		afternoon = "逛街购物，探索当地商业区"
	} else if has("户外运动") {
		afternoon = "参与户外运动活动"
	}

	if has("美食探索") {
		evening = "寻找当地特色美食，品尝街头小吃"
	} else if has("休闲度假") {
		evening = "在酒店或度假村放松休息"
	}

	return morning, afternoon, evening
}
