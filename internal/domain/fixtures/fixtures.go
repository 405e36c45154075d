// Package fixtures guarda as coleções escritas à mão (alertas, vistorias, equipe).
// Cada função devolve uma cópia nova para que ninguém altere os dados compartilhados.
package fixtures

import (
	"slices"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

var faultWarnings = []entities.FaultWarning{
	{
		ID: "FW001", DeviceID: "AC-1205", DeviceName: "1205房间空调", DeviceType: entities.DeviceTypeAirConditioner,
		Status: entities.DeviceError, Level: entities.LevelHigh, Message: "压缩机过热保护触发",
		Location: "12楼1205房间", Timestamp: "2024-01-15 09:23:11", Handling: entities.StatusProcessing, Assignee: "王建国",
	},
	{
		ID: "FW002", DeviceID: "ELEVATOR-3", DeviceName: "3号电梯", DeviceType: entities.DeviceTypeElevator,
		Status: entities.DeviceWarning, Level: entities.LevelCritical, Message: "门机运行异常，开关门次数超限",
		Location: "电梯井", Timestamp: "2024-01-15 08:47:02", Handling: entities.StatusPending,
	},
	{
		ID: "FW003", DeviceID: "CCTV-07-2", DeviceName: "7楼监控摄像头2", DeviceType: entities.DeviceTypeCCTVCamera,
		Status: entities.DeviceOffline, Level: entities.LevelMedium, Message: "视频信号丢失",
		Location: "7楼走廊", Timestamp: "2024-01-14 22:10:45", Handling: entities.StatusProcessing, Assignee: "李明",
	},
	{
		ID: "FW004", DeviceID: "ROBOT-2", DeviceName: "送餐机器人2", DeviceType: entities.DeviceTypeDeliveryRobot,
		Status: entities.DeviceWarning, Level: entities.LevelLow, Message: "电量低于20%",
		Location: "服务中心", Timestamp: "2024-01-14 19:02:30", Handling: entities.StatusResolved, Assignee: "赵磊",
	},
	{
		ID: "FW005", DeviceID: "MINIBAR-1712", DeviceName: "1712房间迷你吧", DeviceType: entities.DeviceTypeMiniBar,
		Status: entities.DeviceWarning, Level: entities.LevelLow, Message: "制冷温度偏高(9.5°C)",
		Location: "17楼1712房间", Timestamp: "2024-01-14 16:55:08", Handling: entities.StatusPending,
	},
	{
		ID: "FW006", DeviceID: "ACCESS-01-1", DeviceName: "1楼门禁1", DeviceType: entities.DeviceTypeAccessControl,
		Status: entities.DeviceError, Level: entities.LevelHigh, Message: "读卡模块通信失败",
		Location: "1楼电梯厅", Timestamp: "2024-01-14 11:31:19", Handling: entities.StatusResolved, Assignee: "李明",
	},
}

var deviceLinkages = []entities.DeviceLinkage{
	{
		ID: "DL001", Name: "入住欢迎模式", TriggerDevice: "ACCESS-01-1", Condition: "客人刷卡入住",
		Actions: []string{"空调设定24°C", "灯光亮度80%", "窗帘打开"}, Enabled: true, LastTriggered: "2024-01-15 14:05:00",
	},
	{
		ID: "DL002", Name: "离房节能", TriggerDevice: "sensor", Condition: "房间无人超过30分钟",
		Actions: []string{"空调切换节能模式", "关闭灯光"}, Enabled: true, LastTriggered: "2024-01-15 10:42:13",
	},
	{
		ID: "DL003", Name: "火警联动", TriggerDevice: "fire_alarm", Condition: "烟感报警",
		Actions: []string{"电梯迫降至1楼", "门禁全部释放", "广播疏散通知"}, Enabled: true,
	},
	{
		ID: "DL004", Name: "夜间安防", TriggerDevice: "CCTV", Condition: "23:00后走廊检测到移动",
		Actions: []string{"摄像头开始录像", "通知安保值班"}, Enabled: false,
	},
}

var users = []entities.User{
	{ID: "U001", Name: "张伟", Username: "zhangwei", Role: "admin", Department: "信息中心", Phone: "13800000001", Email: "zhangwei@hotel.example", Active: true},
	{ID: "U002", Name: "王建国", Username: "wangjianguo", Role: "engineer", Department: "工程部", Phone: "13800000002", Email: "wangjg@hotel.example", Active: true},
	{ID: "U003", Name: "李明", Username: "liming", Role: "engineer", Department: "工程部", Phone: "13800000003", Email: "liming@hotel.example", Active: true},
	{ID: "U004", Name: "陈静", Username: "chenjing", Role: "manager", Department: "客房部", Phone: "13800000004", Email: "chenjing@hotel.example", Active: true},
	{ID: "U005", Name: "赵磊", Username: "zhaolei", Role: "operator", Department: "安保部", Phone: "13800000005", Email: "zhaolei@hotel.example", Active: true},
	{ID: "U006", Name: "刘芳", Username: "liufang", Role: "operator", Department: "前厅部", Phone: "13800000006", Email: "liufang@hotel.example", Active: false},
}

var organizationUnits = []entities.OrganizationUnit{
	{ID: "ORG001", Name: "酒店管理层", Manager: "张伟", MemberCount: 6},
	{ID: "ORG002", Name: "工程部", ParentID: "ORG001", Manager: "王建国", MemberCount: 18},
	{ID: "ORG003", Name: "客房部", ParentID: "ORG001", Manager: "陈静", MemberCount: 42},
	{ID: "ORG004", Name: "安保部", ParentID: "ORG001", Manager: "赵磊", MemberCount: 15},
	{ID: "ORG005", Name: "前厅部", ParentID: "ORG001", Manager: "刘芳", MemberCount: 20},
	{ID: "ORG006", Name: "信息中心", ParentID: "ORG002", Manager: "张伟", MemberCount: 5},
}

var safetyEvents = []entities.SafetyEvent{
	{ID: "SE001", Type: "烟感报警", Level: entities.LevelHigh, Location: "8楼0815房间", Description: "烟感探测器报警，现场确认为客人吸烟", Timestamp: "2024-01-15 01:12:40", Status: entities.StatusResolved, Handler: "赵磊"},
	{ID: "SE002", Type: "非法闯入", Level: entities.LevelCritical, Location: "B1设备间", Description: "门禁未授权开启", Timestamp: "2024-01-14 23:48:05", Status: entities.StatusProcessing, Handler: "赵磊"},
	{ID: "SE003", Type: "消防通道堵塞", Level: entities.LevelMedium, Location: "5楼东侧楼梯", Description: "布草车堵塞消防通道", Timestamp: "2024-01-14 15:20:00", Status: entities.StatusResolved, Handler: "陈静"},
	{ID: "SE004", Type: "漏水", Level: entities.LevelMedium, Location: "3楼0306房间", Description: "卫生间吊顶渗水", Timestamp: "2024-01-14 09:05:33", Status: entities.StatusPending},
}

var inspectionRecords = []entities.InspectionRecord{
	{ID: "IR001", Area: "配电房", Inspector: "王建国", Date: "2024-01-15", Result: "normal", IssueCount: 0},
	{ID: "IR002", Area: "12楼客房", Inspector: "李明", Date: "2024-01-15", Result: "abnormal", IssueCount: 2, Notes: "1205空调异响，1210灯具闪烁"},
	{ID: "IR003", Area: "消防泵房", Inspector: "赵磊", Date: "2024-01-14", Result: "normal", IssueCount: 0},
	{ID: "IR004", Area: "电梯机房", Inspector: "王建国", Date: "2024-01-14", Result: "abnormal", IssueCount: 1, Notes: "3号电梯门机皮带磨损"},
	{ID: "IR005", Area: "B1设备间", Inspector: "李明", Date: "2024-01-13", Result: "abnormal", IssueCount: 1, Notes: "门禁读卡器外壳破损"},
}

var rectificationItems = []entities.RectificationItem{
	{ID: "RI001", InspectionID: "IR002", Issue: "1205房间空调压缩机异响", Responsible: "李明", Deadline: "2024-01-17", Status: entities.StatusProcessing, Progress: 60},
	{ID: "RI002", InspectionID: "IR002", Issue: "1210房间灯具闪烁", Responsible: "李明", Deadline: "2024-01-16", Status: entities.StatusResolved, Progress: 100},
	{ID: "RI003", InspectionID: "IR004", Issue: "3号电梯门机皮带更换", Responsible: "王建国", Deadline: "2024-01-18", Status: entities.StatusPending, Progress: 0},
	{ID: "RI004", InspectionID: "IR005", Issue: "B1门禁读卡器更换外壳", Responsible: "赵磊", Deadline: "2024-01-20", Status: entities.StatusProcessing, Progress: 30},
}

func FaultWarnings() []entities.FaultWarning { return slices.Clone(faultWarnings) }

// DeviceLinkages também copia a lista de ações de cada regra.
func DeviceLinkages() []entities.DeviceLinkage {
	out := slices.Clone(deviceLinkages)
	for i := range out {
		out[i].Actions = slices.Clone(out[i].Actions)
	}
	return out
}

func Users() []entities.User { return slices.Clone(users) }

func OrganizationUnits() []entities.OrganizationUnit { return slices.Clone(organizationUnits) }

func SafetyEvents() []entities.SafetyEvent { return slices.Clone(safetyEvents) }

func InspectionRecords() []entities.InspectionRecord { return slices.Clone(inspectionRecords) }

func RectificationItems() []entities.RectificationItem { return slices.Clone(rectificationItems) }
