package booking

type SelectClassReq struct {
	Inst    string `query:"inst" validate:"required"`
	User    string `query:"user" validate:"required"`
	ClassId string `query:"classid" validate:"required"`
}

// StepResult 选课流程中单个文档更新的结果
type StepResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	Error         string `json:"error,omitempty"`
}

func (r StepResult) OK() bool {
	return r.Error == "" && r.MatchedCount > 0
}

// SelectClassResp 三个更新互相独立, 调用方需要逐个检查
type SelectClassResp struct {
	Instructor StepResult `json:"instructor"`
	Student    StepResult `json:"student"`
	Class      StepResult `json:"class"`
}

// ReplaceSelectedClassesReq 请求体是完整的课程id数组, 整体覆盖
type ReplaceSelectedClassesReq struct {
	Email           string   `path:"email" validate:"required"`
	SelectedClasses []string `json:"-" validate:"required,dive,required"`
}
