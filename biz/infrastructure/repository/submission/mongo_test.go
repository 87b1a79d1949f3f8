package submission

import (
	"testing"
	"time"

	"classroom-hub/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setDocKeys(t *testing.T, update bson.M) bson.M {
	t.Helper()
	raw, err := bson.Marshal(update[consts.Set])
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

// 重新提交会把批改字段置空，更新文档必须用$unset清掉旧值，
// 否则omitempty让$set漏掉这些字段，旧分数留在库里
func TestUpdateDocResetsGrading(t *testing.T) {
	grade := int64(8)
	feedback := "Good job"
	gradeTime := time.Now()
	sub := &Submission{
		ID:           primitive.NewObjectID(),
		AssignmentID: "assignment-1",
		StudentID:    "student-1",
		TeacherID:    "teacher-1",
		Status:       consts.StatusGraded,
		Grade:        &grade,
		Feedback:     &feedback,
		GradeTime:    &gradeTime,
	}

	// 模拟覆盖提交后的状态
	sub.Status = consts.StatusSubmitted
	sub.Grade = nil
	sub.Feedback = nil
	sub.GradeTime = nil

	update := updateDoc(sub)

	unset, ok := update[consts.Unset].(bson.M)
	require.True(t, ok, "重置批改时更新文档必须携带$unset")
	assert.Contains(t, unset, consts.Grade)
	assert.Contains(t, unset, consts.Feedback)
	assert.Contains(t, unset, consts.GradeTime)

	setDoc := setDocKeys(t, update)
	assert.NotContains(t, setDoc, consts.Grade)
	assert.NotContains(t, setDoc, consts.Feedback)
	assert.NotContains(t, setDoc, consts.GradeTime)
	assert.Equal(t, consts.StatusSubmitted, setDoc[consts.Status])
}

func TestUpdateDocKeepsGrading(t *testing.T) {
	grade := int64(9)
	feedback := "不错"
	gradeTime := time.Now()
	sub := &Submission{
		ID:        primitive.NewObjectID(),
		Status:    consts.StatusGraded,
		Grade:     &grade,
		Feedback:  &feedback,
		GradeTime: &gradeTime,
	}

	update := updateDoc(sub)

	assert.NotContains(t, update, consts.Unset)
	setDoc := setDocKeys(t, update)
	assert.EqualValues(t, 9, setDoc[consts.Grade])
	assert.Equal(t, "不错", setDoc[consts.Feedback])
}
